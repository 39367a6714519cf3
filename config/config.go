// Package config loads vrsix settings from a YAML file, the environment and
// command-line overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/viant/sqlite-vrs/engine"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDBURL    = "VRSIX_DB_URL"
	EnvLogLevel = "VRSIX_LOG_LEVEL"
)

// DefaultDBURL is used when no location is configured.
const DefaultDBURL = engine.Scheme + "vrs_locations.sqlite"

// Config holds the settings for the vrsix command.
type Config struct {
	DBURL       string        `yaml:"db_url"`
	ForeignKeys *bool         `yaml:"foreign_keys,omitempty"`
	JournalMode string        `yaml:"journal_mode,omitempty"`
	BusyTimeout time.Duration `yaml:"busy_timeout,omitempty"`
	Log         LogConfig     `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns a Config with foreign keys enforced and info-level text logs.
func Default() *Config {
	fk := true
	return &Config{
		DBURL:       DefaultDBURL,
		ForeignKeys: &fk,
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// ApplyEnv overrides fields from VRSIX_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDBURL); v != "" {
		c.DBURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) setDefaults() {
	if c.DBURL == "" {
		c.DBURL = DefaultDBURL
	}
	if c.ForeignKeys == nil {
		fk := true
		c.ForeignKeys = &fk
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the database location and log settings.
func (c *Config) Validate() error {
	if _, err := engine.ParsePath(c.DBURL); err != nil {
		return err
	}
	if _, err := engine.DSN(c.DBURL, c.EngineOptions()...); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", c.Log.Format)
	}
	if c.BusyTimeout < 0 {
		return fmt.Errorf("config: busy_timeout must not be negative")
	}
	return nil
}

// EngineOptions translates the config into connection options.
func (c *Config) EngineOptions() []engine.Option {
	fk := true
	if c.ForeignKeys != nil {
		fk = *c.ForeignKeys
	}
	opts := []engine.Option{engine.WithForeignKeys(fk)}
	if c.JournalMode != "" {
		opts = append(opts, engine.WithJournalMode(c.JournalMode))
	}
	if c.BusyTimeout > 0 {
		opts = append(opts, engine.WithBusyTimeout(c.BusyTimeout))
	}
	return opts
}
