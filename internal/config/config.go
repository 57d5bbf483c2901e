// Package config holds the gateway configuration, populated from viper
// (flags, environment, optional config file) by the CLI.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Listen          string
	DB              string
	LogLevel        string
	Pretty          bool
	GraphiQL        bool
	AllowedCIDRs    []string
	TSAuthKey       string
	TSHostname      string
	MetricsInterval time.Duration
}

// FromViper builds a Config from the given viper instance, applying
// defaults for unset values, and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Listen:          v.GetString("listen"),
		DB:              v.GetString("db"),
		LogLevel:        v.GetString("log-level"),
		Pretty:          v.GetBool("pretty"),
		GraphiQL:        v.GetBool("graphiql"),
		AllowedCIDRs:    v.GetStringSlice("allowed-cidrs"),
		TSAuthKey:       v.GetString("ts-authkey"),
		TSHostname:      v.GetString("ts-hostname"),
		MetricsInterval: v.GetDuration("metrics-interval"),
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.DB == "" {
		cfg.DB = "sqlite:gqlgate.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TSHostname == "" {
		cfg.TSHostname = "gqlgate"
	}
	if cfg.MetricsInterval == 0 {
		cfg.MetricsInterval = time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.DB == "" {
		return fmt.Errorf("database URI is required")
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
}
