package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/internal/server"
	"github.com/trellisgraph/trellis/pkg/cache"
	"github.com/trellisgraph/trellis/pkg/store"
)

const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		backend    string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the graph HTTP server",
		Long: `Run the graph HTTP server.

Graphs are stored in the configured backend (memory, file, redis, or mongo)
and served as JSON, DOT text, rendered SVG, or traversal orders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if backend != "" {
				cfg.Server.Store = backend
			}
			return runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&backend, "store", "", "store backend: memory, file, redis, or mongo (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// openStore creates the store backend named by cfg.
func openStore(ctx context.Context, cfg ServerConfig) (store.Store, error) {
	switch cfg.Store {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.FileDir)
	case "redis":
		return store.NewRedisStore(ctx, cfg.Redis)
	case "mongo":
		return store.NewMongoStore(ctx, cfg.Mongo)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory, file, redis, or mongo)", cfg.Store)
	}
}

func runServe(ctx context.Context, cfg Config, noCache bool) error {
	logger := loggerFromContext(ctx)

	st, err := openStore(ctx, cfg.Server)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	c := renderCache(cfg, noCache)
	defer c.Close()
	if _, ok := c.(*cache.NullCache); ok {
		logger.Debug("render cache disabled")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(st, c, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "store", cfg.Server.Store)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
