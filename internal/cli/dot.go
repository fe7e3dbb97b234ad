package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/pkg/dot"
	"github.com/trellisgraph/trellis/pkg/graph"
	"github.com/trellisgraph/trellis/pkg/graphio"
)

// loadCompiled imports a graph file and compiles it.
func loadCompiled(path string) (*graph.CompiledGraph, graphio.Document, error) {
	doc, err := graphio.Import(path)
	if err != nil {
		return nil, graphio.Document{}, err
	}
	return doc.Graph().Compile(), doc, nil
}

// newDotCmd creates the dot command for printing Graphviz DOT text.
func newDotCmd() *cobra.Command {
	var (
		name    string
		output  string
		mutable bool
	)

	cmd := &cobra.Command{
		Use:   "dot [graph file]",
		Short: "Print the Graphviz DOT form of a graph",
		Long: `Print the Graphviz DOT form of a graph.

By default the graph is compiled first, so node and edge lines come out in
ascending numeric order. With --mutable the adjacency structure is exported
as-is, in whatever order it enumerates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := graphio.Import(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = doc.Name
			}

			var g graph.Directed = doc.Graph()
			if !mutable {
				g = doc.Graph().Compile()
			}
			text := dot.Marshal(g, name)
			logger.Debug("exported DOT", "bytes", len(text))

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "digraph name (defaults to the document name)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&mutable, "mutable", false, "export without compiling (unspecified order)")

	return cmd
}
