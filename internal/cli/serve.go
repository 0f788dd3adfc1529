package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/api"
	"github.com/matzehuels/wheeltag/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	redis   string
	noCache bool
}

// serveCommand creates the serve command, which exposes the tag engine as
// an HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose tags, parse and check as an HTTP API",
		Long: `Run an HTTP server answering tag engine queries.

Endpoints:
  GET  /v1/tags    Ordered tag sequence for an environment (query params)
  GET  /v1/parse   Expand ?tag= or ?wheel= into concrete tags
  POST /v1/check   Match wheels against an environment (JSON body)

Computed sequences are cached on disk by default; point --redis at a
Redis instance to share the cache across replicas.

Examples:
  wheeltag serve
  wheeltag serve --addr :9000 --redis localhost:6379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := c.openServeCache(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()

			server := &http.Server{
				Addr:              opts.addr,
				Handler:           api.NewServer(c.Logger, store),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() { errc <- server.ListenAndServe() }()
			c.Logger.Infof("Listening on %s", opts.addr)

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			c.Logger.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8425", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for a shared cache (e.g. localhost:6379)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the sequence cache")

	return cmd
}

// openServeCache picks the cache backend for the server. Redis wins over
// the on-disk default; --no-cache beats both.
func (c *CLI) openServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redis != "":
		store, err := cache.NewRedisCache(ctx, opts.redis)
		if err != nil {
			return nil, err
		}
		c.Logger.Debugf("Using Redis cache at %s", opts.redis)
		return store, nil
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		store, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warnf("Sequence cache disabled: %v", err)
			return cache.NewNullCache(), nil
		}
		return store, nil
	}
}
