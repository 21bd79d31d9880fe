package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjcode/pkg/cache"
	"github.com/matzehuels/adjcode/pkg/config"
	"github.com/matzehuels/adjcode/pkg/pipeline"
	"github.com/matzehuels/adjcode/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	cache     string
	redisAddr string
	ttl       time.Duration
}

// serveCommand creates the serve command, which exposes the converters
// over HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converters over HTTP",
		Long: `Serve starts an HTTP API for encoding, decoding and rendering graph code
streams. Encode and decode responses are cached in the file cache, in Redis
or not at all (--cache none).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Serve
			if !cmd.Flags().Changed("addr") {
				opts.addr = cfg.Addr
			}
			if !cmd.Flags().Changed("cache") {
				opts.cache = cfg.Cache
			}
			if !cmd.Flags().Changed("redis-addr") {
				opts.redisAddr = cfg.RedisAddr
			}
			if !cmd.Flags().Changed("cache-ttl") {
				opts.ttl = cfg.CacheTTL.Duration
			}
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.cache, "cache", "", "response cache: none, file or redis (default from config, file)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for --cache redis")
	cmd.Flags().DurationVar(&opts.ttl, "cache-ttl", 0, "lifetime of cached responses")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	store, err := c.newCache(ctx, opts.cache, opts.redisAddr)
	if err != nil {
		return err
	}
	// Redis may be shared with other services.
	keyer := cache.NewDefaultKeyer()
	if opts.cache == config.CacheRedis {
		keyer = cache.NewScopedKeyer(keyer, appName+":")
	}
	runner := pipeline.NewRunner(store, keyer, logger)
	if opts.ttl > 0 {
		runner.TTL = opts.ttl
	}
	defer runner.Close()

	logger.Debug("cache ready", "backend", opts.cache, "ttl", runner.TTL)
	printInfo("Serving on %s", opts.addr)
	printKeyValue("cache", opts.cache)
	if opts.cache == config.CacheNone {
		printWarning("Responses are not cached")
	} else {
		printKeyValue("ttl", runner.TTL.String())
	}
	printNextStep("Try", "curl --data-binary @graphs.txt http://localhost"+portOf(opts.addr)+"/v1/encode/multi")

	srv := server.New(runner, logger, server.Config{Addr: opts.addr})
	return srv.ListenAndServe(ctx)
}

// portOf returns the ":port" suffix of addr.
func portOf(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ""
}
