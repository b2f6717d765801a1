package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Denizche/divscheme/internal/api"
	"github.com/Denizche/divscheme/pkg/cache"
	"github.com/Denizche/divscheme/pkg/errors"
	"github.com/Denizche/divscheme/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		config   string
		redis    string
		noCache  bool
		cacheTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the division scheme HTTP API",
		Long: `Run the division scheme HTTP API.

The serve command exposes validation and layout over HTTP:

  GET  /health           service status
  GET  /api/v1/info      API description
  POST /api/v1/validate  full GOST validation report
  POST /api/v1/layout    validation plus placement coordinates

Layout responses are cached: in redis when --redis is given (recommended for
multi-instance deployments), otherwise in the local file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, config, redis, noCache, cacheTTL)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&config, "config", "", "TOML file overriding the layout constants")
	cmd.Flags().StringVar(&redis, "redis", "", "redis address for the shared result cache (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", pipeline.DefaultCacheTTL, "result cache entry lifetime")

	return cmd
}

// runServe builds the cache and runner, then serves until the context is
// cancelled.
func (c *CLI) runServe(ctx context.Context, addr, config, redisAddr string, noCache bool, cacheTTL time.Duration) error {
	if err := errors.ValidateListenAddr(addr); err != nil {
		return err
	}

	constants, err := loadConstants(config)
	if err != nil {
		return err
	}

	var store cache.Cache
	switch {
	case noCache:
		store = cache.NewNullCache()
	case redisAddr != "":
		store, err = cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return errors.Wrap(errors.ErrCodeCache, err, "connect to redis at %s", redisAddr)
		}
		c.Logger.Info("using redis result cache", "addr", redisAddr)
	default:
		store, err = newCache(false)
		if err != nil {
			return fmt.Errorf("initialize cache: %w", err)
		}
	}
	defer store.Close()

	runner := pipeline.NewRunner(store, c.Logger)
	server := api.NewServer(api.Config{
		Addr: addr,
		Options: pipeline.Options{
			Constants: constants,
			NoCache:   noCache,
			CacheTTL:  cacheTTL,
		},
	}, runner, c.Logger)

	return server.ListenAndServe(ctx)
}
