// Package cli implements the jsoncanvas command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/internal/config"
	"github.com/matzehuels/jsoncanvas/pkg/buildinfo"
	"github.com/matzehuels/jsoncanvas/pkg/cache"
	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "jsoncanvas"
)

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

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the layout engine
// and cache events are logged through the observability hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := &logHooks{logger: c.Logger}
		observability.SetLayoutHooks(h)
		observability.SetCacheHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "jsoncanvas edits and lays out JSON Canvas documents",
		Long: `jsoncanvas reads and writes JSON Canvas (.canvas) documents. New nodes are
placed in free space, nested into the groups that enclose them, and edges are
anchored at the closest visible sides of their endpoints.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.config(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/jsoncanvas/config.toml)")

	// Register all subcommands
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// config loads the configuration file once per CLI.
func (c *CLI) config() (config.Config, error) {
	if c.cfg != nil {
		return *c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	c.cfg = &cfg
	return cfg, nil
}

// canvasConfig returns the engine configuration with the CLI logger.
func (c *CLI) canvasConfig() canvas.Config {
	cfg, _ := c.config()
	cc := cfg.Canvas()
	cc.Logger = c.Logger
	return cc
}

// =============================================================================
// Cache Factory
// =============================================================================

// redisKeyPrefix namespaces CLI entries in a Redis instance shared with
// other tools.
const redisKeyPrefix = "jsoncanvas:v1:"

// newLayouts opens the layout cache selected by the configuration: Redis when
// a URL is configured, the file cache otherwise. The returned cache must be
// closed by the caller.
func (c *CLI) newLayouts(ctx context.Context, noCache bool) (*cache.Layouts, cache.Cache, error) {
	cfg, _ := c.config()
	backend, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, nil, err
	}
	var keyer cache.Keyer
	if cfg.Cache.RedisURL != "" && !noCache {
		keyer = cache.NewScopedKeyer(nil, redisKeyPrefix)
	}
	return cache.NewLayouts(backend, keyer, cfg.Cache.TTL.Duration), backend, nil
}

func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisURL != "" {
		c.Logger.Debug("using redis cache")
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/jsoncanvas/).
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
