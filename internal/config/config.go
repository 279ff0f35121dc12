// Package config loads application configuration from environment variables.
// All variables use the ORIENTA_ prefix.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite history database. Empty means the XDG default.
	DBPath string `env:"DB"`

	// ContentPath is a catalog YAML file. Empty means the built-in catalog.
	ContentPath string `env:"CONTENT"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load parses ORIENTA_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ORIENTA_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Level converts LogLevel to a slog level, defaulting to warn.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetupLogger installs a text slog handler on stderr as the default logger.
func (c *Config) SetupLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()})
	slog.SetDefault(slog.New(h))
}
