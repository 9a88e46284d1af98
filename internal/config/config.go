// Package config loads the optional jsoncanvas TOML configuration file.
//
// A configuration file looks like:
//
//	[layout]
//	margin = 10
//	default_width = 250
//	default_height = 60
//
//	[cache]
//	dir = "~/.cache/jsoncanvas"
//	redis_url = ""
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
// Every key is optional. A missing file yields [Default].
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	cerrors "github.com/matzehuels/jsoncanvas/pkg/errors"
)

const (
	appName  = "jsoncanvas"
	fileName = "config.toml"

	DefaultAddr     = ":8080"
	DefaultCacheTTL = 24 * time.Hour
)

// Config is the decoded configuration file.
type Config struct {
	Layout Layout `toml:"layout"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`

	// Path is the file the configuration was read from, empty when the
	// defaults are in effect.
	Path string `toml:"-"`
}

// Layout holds the engine parameters.
type Layout struct {
	Margin        int `toml:"margin"`
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`
}

// Cache selects and tunes the layout cache backend. A non-empty RedisURL
// takes precedence over Dir.
type Cache struct {
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Server configures the HTTP service.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	def := canvas.DefaultConfig()
	return Config{
		Layout: Layout{
			Margin:        def.Margin,
			DefaultWidth:  def.DefaultWidth,
			DefaultHeight: def.DefaultHeight,
		},
		Cache:  Cache{TTL: Duration{DefaultCacheTTL}},
		Server: Server{Addr: DefaultAddr},
	}
}

// Canvas converts the layout section into an engine configuration.
func (c Config) Canvas() canvas.Config {
	return canvas.Config{
		Margin:        c.Layout.Margin,
		DefaultWidth:  c.Layout.DefaultWidth,
		DefaultHeight: c.Layout.DefaultHeight,
	}
}

// Validate checks the layout section against the engine's requirements.
func (c Config) Validate() error {
	if err := c.Canvas().Validate(); err != nil {
		return err
	}
	if c.Cache.TTL.Duration < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "cache ttl must not be negative, got %s", c.Cache.TTL.Duration)
	}
	return nil
}

// Load reads the configuration. An explicit path must exist; otherwise the
// search path from [SearchPaths] is tried and a missing file means defaults.
func Load(path string) (Config, error) {
	if path != "" {
		return Read(path)
	}
	for _, p := range SearchPaths() {
		cfg, err := Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}

// Read decodes the file at path over the defaults. Keys absent from the
// file keep their default values.
func Read(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, err
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), cerrors.New(cerrors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// SearchPaths returns the candidate config file locations in lookup order:
// $XDG_CONFIG_HOME/jsoncanvas/config.toml, then ~/.config/jsoncanvas/config.toml.
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName, fileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", appName, fileName)
		if len(paths) == 0 || paths[0] != p {
			paths = append(paths, p)
		}
	}
	return paths
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
