package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plotforge/plotforge/internal/server"
	"github.com/plotforge/plotforge/pkg/cache"
	"github.com/plotforge/plotforge/pkg/render"
)

// serveCommand creates the serve command, the main entry point of the
// application.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		mode       string
		transport  string
		addr       string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP chart server",
		Long: `Run the MCP chart server.

By default the server speaks MCP over stdio and returns rendered charts as
inline PNG image content. With --mode file, charts are instead saved to the
temp directory and opened in the platform image viewer. With --transport http,
the same tool set is served over MCP's streamable-HTTP transport together
with a /healthz endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("transport") {
				cfg.Transport = transport
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if noCache {
				cfg.Cache.Backend = CacheNone
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			return c.serve(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&mode, "mode", ModeImage, "output mode: image (inline PNG) or file (save and display)")
	cmd.Flags().StringVar(&transport, "transport", TransportStdio, "transport: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address for the http transport")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// serve builds the cache, finalizer, and server from cfg and runs the
// selected transport until ctx is canceled.
func (c *CLI) serve(ctx context.Context, cfg Config, logger *log.Logger) error {
	renderCache, err := newCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer renderCache.Close()

	srv := server.New(server.Options{
		Finalizer: newFinalizer(cfg),
		Cache:     renderCache,
		CacheTTL:  cfg.Cache.TTL.Duration,
		Logger:    logger,
	})

	if cfg.Transport == TransportHTTP {
		return srv.ListenHTTP(ctx, cfg.Addr)
	}

	logger.Debug("serving on stdio", "mode", cfg.Mode)
	return srv.ServeStdio(ctx)
}

// newFinalizer picks the output finalizer for the configured mode.
func newFinalizer(cfg Config) render.Finalizer {
	if cfg.Mode == ModeFile {
		return render.FileSaver{Display: true}
	}
	return render.Encoder{}
}

// newCache builds the render cache for cfg. The cache only pays off when
// PNGs are returned inline, so file mode always gets the null cache.
func newCache(ctx context.Context, cfg Config, logger *log.Logger) (cache.Cache, error) {
	if cfg.Mode == ModeFile && cfg.Cache.Backend != CacheNone {
		logger.Debug("render cache disabled in file mode")
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case CacheFile:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		p := newProgress(logger)
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		p.done("Initialized file cache")
		return fc, nil
	case CacheRedis:
		p := newProgress(logger)
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return nil, err
		}
		p.done("Connected to redis cache")
		return rc, nil
	default:
		return cache.NewNullCache(), nil
	}
}
