package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/internal/server"
	"github.com/matzehuels/cellstack/pkg/cache"
	"github.com/matzehuels/cellstack/pkg/observability"
	"github.com/matzehuels/cellstack/pkg/pipeline"
)

// redisKeyPrefix scopes server keys in a shared Redis.
const redisKeyPrefix = "cellstack:v1:"

// serveCommand runs the HTTP designer.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pack designer over HTTP",
		Long: `Serve the pack designer over HTTP.

Endpoints:
  GET /                      interactive designer page
  GET /api/v1/cells          cell catalog
  GET /api/v1/pack           configuration and scene as JSON
  GET /api/v1/pack.svg       pack diagram
  GET /api/v1/schematic.svg  wiring schematic
  GET /healthz               liveness

Rendered artifacts are cached in Redis when --redis is set, otherwise in the
local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Settings.Addr
			}
			if redisAddr == "" {
				redisAddr = c.Settings.RedisAddr
			}
			return c.runServe(cmd.Context(), addr, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+c.Settings.Addr+")")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address or redis:// URL for the shared cache")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr string) error {
	logger := loggerFromContext(ctx)
	observability.SetPipelineHooks(observability.NewLogHooks(logger))
	observability.SetCacheHooks(observability.NewLogHooks(logger))
	observability.SetHTTPHooks(observability.NewLogHooks(logger))
	defer observability.Reset()

	var (
		ch    cache.Cache
		keyer cache.Keyer
		err   error
	)
	if redisAddr != "" && !c.noCache {
		ch, err = cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		keyer = cache.NewScopedKeyer(nil, redisKeyPrefix)
		logger.Info("using redis cache", "addr", redisAddr)
	} else if ch, err = c.newCache(); err != nil {
		return err
	}
	ch = cache.WithMaxTTL(ch, c.Settings.CacheTTL)

	runner := pipeline.NewRunner(ch, keyer, logger)
	defer runner.Close()

	srv := server.New(runner, c.Settings, logger)
	printInfo("Designer running at http://%s", addr)
	return srv.ListenAndServe(ctx, addr)
}
