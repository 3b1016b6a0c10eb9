// Package config handles inspector configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/strix/internal/core"
)

// Config is the top-level inspector configuration. Maps to the `strix:`
// root key in YAML.
type Config struct {
	Input   InputConfig    `mapstructure:"input"`
	Inspect map[string]any `mapstructure:"inspect"` // Inspector options, decoded downstream
	Output  OutputConfig   `mapstructure:"output"`
	Log     LogConfig      `mapstructure:"log"`
}

// InputConfig selects and filters the packet source.
type InputConfig struct {
	File       string `mapstructure:"file"`        // pcap file path
	Filter     string `mapstructure:"filter"`      // BPF filter, e.g. "udp portrange 50000-50255"
	BufferSize int    `mapstructure:"buffer_size"` // Raw packet channel capacity
}

// OutputConfig selects the sink.
type OutputConfig struct {
	Type string `mapstructure:"type"` // "console"
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string           `mapstructure:"level"`  // debug | info | warn | error
	Format string           `mapstructure:"format"` // text | json
	File   FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig enables rotated file output in addition to stderr.
type FileOutputConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// configRoot wraps Config under the `strix:` YAML root key.
type configRoot struct {
	Strix Config `mapstructure:"strix"`
}

// Load reads, defaults, and validates the configuration file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Environment variable overrides: key "strix.log.level" → env "STRIX_LOG_LEVEL".
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Strix

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values. All keys use the "strix." prefix to
// match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("strix.input.buffer_size", 1024)

	v.SetDefault("strix.output.type", "console")

	v.SetDefault("strix.log.level", "info")
	v.SetDefault("strix.log.format", "text")
	v.SetDefault("strix.log.file.enabled", false)
	v.SetDefault("strix.log.file.path", "/var/log/strix/strix.log")
	v.SetDefault("strix.log.file.max_size_mb", 100)
	v.SetDefault("strix.log.file.max_age_days", 30)
	v.SetDefault("strix.log.file.max_backups", 5)
	v.SetDefault("strix.log.file.compress", true)
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.Input.File == "" {
		return fmt.Errorf("input.file is required: %w", core.ErrConfigInvalid)
	}
	if c.Input.BufferSize < 0 {
		return fmt.Errorf("input.buffer_size must be non-negative: %w", core.ErrConfigInvalid)
	}
	switch c.Output.Type {
	case "console":
	default:
		return fmt.Errorf("unknown output.type %q: %w", c.Output.Type, core.ErrConfigInvalid)
	}
	return nil
}
