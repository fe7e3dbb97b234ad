package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/pkg/graph"
)

// Traversal order names accepted by traverse and explore.
const (
	orderDFS  = "dfs"
	orderBFS  = "bfs"
	orderTopo = "topo"
)

// errCycle is returned by topological traversal when the order is
// incomplete.
var errCycle = errors.New("graph contains a cycle: topological order is incomplete")

// newTraverseCmd creates the traverse command.
func newTraverseCmd() *cobra.Command {
	var (
		order string
		start uint16
	)

	cmd := &cobra.Command{
		Use:   "traverse [graph file]",
		Short: "Print a graph traversal, one node per line",
		Long: `Print a graph traversal, one node per line.

The graph is compiled first so sibling order is deterministic (ascending).
For dfs and bfs the walk starts at --start; topo ignores --start and orders
the whole graph, failing if a cycle leaves the order incomplete.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, _, err := loadCompiled(args[0])
			if err != nil {
				return err
			}
			return runTraverse(cmd.OutOrStdout(), compiled, order, graph.NodeID(start))
		},
	}

	cmd.Flags().StringVar(&order, "order", orderBFS, "traversal order: dfs, bfs, or topo")
	cmd.Flags().Uint16Var(&start, "start", 0, "start node for dfs/bfs")

	return cmd
}

func runTraverse(w io.Writer, g graph.Directed, order string, start graph.NodeID) error {
	switch order {
	case orderDFS:
		for n := range graph.DFS(g, start) {
			fmt.Fprintln(w, n)
		}
	case orderBFS:
		for n := range graph.BFS(g, start) {
			fmt.Fprintln(w, n)
		}
	case orderTopo:
		topo := graph.Topological(g)
		for n := range topo.All() {
			fmt.Fprintln(w, n)
		}
		if topo.HasCycle() {
			return errCycle
		}
	default:
		return fmt.Errorf("unknown order %q (want dfs, bfs, or topo)", order)
	}
	return nil
}
