package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/pkg/graph"
)

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	var degrees bool

	cmd := &cobra.Command{
		Use:   "stats [graph file]",
		Short: "Print node and edge statistics for a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, doc, err := loadCompiled(args[0])
			if err != nil {
				return err
			}
			return runStats(cmd.OutOrStdout(), compiled, doc.Name, degrees)
		},
	}

	cmd.Flags().BoolVar(&degrees, "degrees", false, "include per-node out-degrees")

	return cmd
}

func runStats(w io.Writer, c *graph.CompiledGraph, name string, degrees bool) error {
	if name == "" {
		name = "(unnamed)"
	}
	topo := graph.Topological(c)

	fmt.Fprintf(w, "graph:    %s\n", name)
	fmt.Fprintf(w, "nodes:    %d\n", c.NodeCount())
	fmt.Fprintf(w, "edges:    %d\n", c.EdgeCount())
	fmt.Fprintf(w, "max id:   %d\n", c.MaxNodeID())
	fmt.Fprintf(w, "acyclic:  %v\n", topo.Valid())

	if !degrees {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "node\tout-degree")
	for n := range c.Nodes() {
		fmt.Fprintf(tw, "%d\t%d\n", n, c.OutDegree(n))
	}
	return tw.Flush()
}
