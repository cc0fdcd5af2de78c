// Package config loads lvlmaze settings from an optional YAML file,
// LVLMAZE_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/pathfinder"
)

// EnvPrefix prefixes every environment variable, e.g. LVLMAZE_SEARCH_MAX_STEPS.
const EnvPrefix = "LVLMAZE"

// ErrConfig wraps every failure to read or decode configuration.
var ErrConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Search SearchConfig `mapstructure:"search"`
	Grid   GridConfig   `mapstructure:"grid"`
}

// LogConfig controls the zap logger built by package logs.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`        // empty: console only
	MaxSize    int    `mapstructure:"max_size"`    // MB per file
	MaxBackups int    `mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

// SearchConfig maps onto pathfinder options.
type SearchConfig struct {
	MaxSteps int  `mapstructure:"max_steps"`
	Lenient  bool `mapstructure:"lenient"`
}

// GridConfig maps onto grid options.
type GridConfig struct {
	MaxDimension int `mapstructure:"max_dimension"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)
	v.SetDefault("search.max_steps", 0)
	v.SetDefault("search.lenient", false)
	v.SetDefault("grid.max_dimension", grid.DefaultMaxDimension)
}

// Load reads configuration into a Config. path may be empty, in which case
// only defaults, environment and flags already bound on v are used.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("%w: config file: %w", ErrConfig, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the options they feed would refuse.
func (c Config) Validate() error {
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("%w: search.max_steps must be >= 0, got %d", ErrConfig, c.Search.MaxSteps)
	}
	if c.Grid.MaxDimension < 1 {
		return fmt.Errorf("%w: grid.max_dimension must be >= 1, got %d", ErrConfig, c.Grid.MaxDimension)
	}
	return nil
}

// GridOptions returns the grid options this configuration selects.
func (c Config) GridOptions() []grid.Option {
	return []grid.Option{grid.WithMaxDimension(c.Grid.MaxDimension)}
}

// SearchOptions returns the pathfinder options this configuration selects.
func (c Config) SearchOptions() []pathfinder.Option {
	opts := []pathfinder.Option{pathfinder.WithMaxSteps(c.Search.MaxSteps)}
	if c.Search.Lenient {
		opts = append(opts, pathfinder.WithSkipOutOfBounds())
	}
	return opts
}
