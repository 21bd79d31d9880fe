package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adjcode/pkg/buildinfo"
	"github.com/matzehuels/adjcode/pkg/cache"
	"github.com/matzehuels/adjcode/pkg/config"
	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "adjcode"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// In and Out are the default input and output streams.
	In  io.Reader
	Out io.Writer

	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "adjcode converts adjacency lists to binary graph codes",
		Long: `adjcode reads graphs written as adjacency lists ("1: 2, 3") and writes them
in the multi_code, planar_code or signed_code binary formats. It also decodes
those streams back to text, draws them, and serves the conversions over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/adjcode/config.toml)")

	root.AddCommand(c.encodeCommand())
	for _, f := range graphcode.Formats {
		root.AddCommand(c.formatCommand(f))
	}
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for one-shot CLI conversions. Those
// never repeat a body, so they run uncached.
func (c *CLI) newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
}

// newCache opens the cache backend named by kind.
func (c *CLI) newCache(ctx context.Context, kind, redisAddr string) (cache.Cache, error) {
	switch kind {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheFile:
		dir, err := cacheDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "get cache dir")
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, redisAddr)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: none, file, redis)", kind)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/adjcode/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// boolSetting returns the flag value when the user set it, else the
// configured value.
func boolSetting(cmd *cobra.Command, flag string, value, configured bool) bool {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return configured
}
