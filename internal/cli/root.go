// Package cli implements the trellis command-line interface.
//
// This package provides commands for exporting graphs to DOT, rendering them
// with Graphviz, running traversals, exploring a graph interactively, and
// serving stored graphs over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - dot: Print the Graphviz DOT form of a graph file
//   - render: Render a graph file to SVG or PNG
//   - traverse: Print a DFS, BFS, or topological traversal
//   - stats: Print node and edge statistics
//   - explore: Step through a traversal interactively
//   - serve: Expose stored graphs over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/pkg/buildinfo"
)

// Execute runs the trellis CLI and returns an error if any command fails.
//
// Execute sets up the root command with all subcommands, configures logging
// based on the --verbose flag, and executes the command tree against ctx.
// The logger is attached to the command context and is accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "trellis",
		Short:        "Trellis builds, compiles, and renders directed graphs",
		Long:         `Trellis is a CLI for directed graphs: load an edge list, compile it into a compact searchable form, run traversals, and export or render Graphviz DOT.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDotCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newTraverseCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
