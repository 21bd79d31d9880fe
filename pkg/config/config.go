// Package config loads adjcode settings from a TOML file.
//
// The file is optional. When it is missing every field keeps its default,
// and command-line flags override whatever the file sets:
//
//	format = "multi"       # multi | planar | signed
//	zero_based = false
//	strict = false
//
//	[serve]
//	addr = ":8080"
//	cache = "file"         # none | file | redis
//	cache_ttl = "24h"
//	redis_addr = "localhost:6379"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
)

// Cache backends for the server.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the decoded configuration file.
type Config struct {
	Format    string `toml:"format"`
	ZeroBased bool   `toml:"zero_based"`
	Strict    bool   `toml:"strict"`
	Serve     Serve  `toml:"serve"`
}

// Serve configures the HTTP API.
type Serve struct {
	Addr      string   `toml:"addr"`
	Cache     string   `toml:"cache"`
	CacheTTL  Duration `toml:"cache_ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

// Duration is a time.Duration written as a string such as "90m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: graphcode.Multi.String(),
		Serve: Serve{
			Addr:      ":8080",
			Cache:     CacheFile,
			CacheTTL:  Duration{24 * time.Hour},
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads path on top of the defaults. An empty path loads the default
// location; a missing default file is not an error, a missing explicit
// file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := graphcode.ParseFormat(c.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
	}
	switch c.Serve.Cache {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "serve.cache must be none, file or redis, got %q", c.Serve.Cache)
	}
	if c.Serve.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "serve.cache_ttl must not be negative")
	}
	return nil
}

// DefaultPath returns the config location following XDG
// (~/.config/adjcode/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "adjcode", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "adjcode", "config.toml"), nil
}
