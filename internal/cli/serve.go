package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/codia/codia/internal/config"
	"github.com/codia/codia/internal/server"
	"github.com/codia/codia/pkg/cache"
	codiaerrors "github.com/codia/codia/pkg/errors"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	listen string
	config string
}

// newServeCmd creates the serve command for the HTTP front end.
func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram HTTP front end",
		Long: `Run an HTTP server that renders class diagrams from pasted or
uploaded Go source. Rendered artifacts are cached; the backend is
chosen by the [server] section of the config file (file, redis, or
none).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}
			if opts.listen != "" {
				cfg.Server.Listen = opts.listen
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/codia/config.toml)")

	return cmd
}

// newCache builds the artifact cache backend from the config.
func newCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Server.Cache {
	case "file":
		return cache.NewFileCache(cfg.Server.CacheDir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Server.Redis)
	case "none", "":
		return cache.NewNullCache(), nil
	}
	return nil, codiaerrors.New(codiaerrors.ErrCodeUnsupported,
		"invalid cache backend: %s (must be 'file', 'redis', or 'none')", cfg.Server.Cache)
}

// runServe starts the HTTP server and shuts it down when ctx is
// canceled.
func runServe(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	c, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("closing cache failed", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           server.New(c, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s (cache: %s)", cfg.Server.Listen, cfg.Server.Cache)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
