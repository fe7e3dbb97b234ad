package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/pkg/cache"
	"github.com/trellisgraph/trellis/pkg/dot"
)

// renderTTL bounds how long rendered artifacts are kept in the local cache.
const renderTTL = 7 * 24 * time.Hour

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var (
		configPath string
		format     string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph file]",
		Short: "Render a graph to SVG or PNG via Graphviz",
		Long: `Render a graph to SVG or PNG via Graphviz.

The graph is compiled, exported to DOT, and rendered in-process. Results are
cached locally keyed by the DOT content hash, so re-rendering an unchanged
graph is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Render.Format
			}
			if format != "svg" && format != "png" {
				return fmt.Errorf("unsupported format %q (want svg or png)", format)
			}
			return runRender(cmd.Context(), args[0], format, output, renderCache(cfg, noCache))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/trellis/config.toml)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// renderCache picks the artifact cache implied by config and flags, falling
// back to a null cache when the file cache cannot be created.
func renderCache(cfg Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache()
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		dir = defaultCacheDir()
	}
	if dir == "" {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

func runRender(ctx context.Context, input, format, output string, c cache.Cache) error {
	logger := loggerFromContext(ctx)
	defer c.Close()

	compiled, doc, err := loadCompiled(input)
	if err != nil {
		return err
	}
	text := dot.Marshal(compiled, doc.Name)
	key := cache.RenderKey(cache.Hash([]byte(text)), format)

	p := newProgress(logger)
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if !hit {
		switch format {
		case "svg":
			data, err = dot.RenderSVG(ctx, text)
		case "png":
			data, err = dot.RenderPNG(ctx, text)
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		if err := c.Set(ctx, key, data, renderTTL); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	} else {
		logger.Debug("cache hit", "key", key)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	p.done(fmt.Sprintf("Rendered %s (%d nodes, %d edges) to %s",
		input, compiled.NodeCount(), compiled.EdgeCount(), output))
	return nil
}
