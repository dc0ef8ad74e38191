// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/roscourse/internal/highlight"
	"github.com/abhisek/roscourse/internal/progress"
)

// Config holds all application configuration.
type Config struct {
	ContentPath  string // external course document; empty uses the embedded course
	LogPath      string // debug log file; empty disables logging
	LogLevel     slog.Level
	AdvanceDelay time.Duration
	CodeStyle    string
}

// Load reads an optional .env file and then configuration from environment
// variables.
func Load() (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	level, err := parseLevel(getEnv("ROSCOURSE_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		ContentPath:  getEnv("ROSCOURSE_CONTENT", ""),
		LogPath:      getEnv("ROSCOURSE_LOG", ""),
		LogLevel:     level,
		AdvanceDelay: getEnvDuration("ROSCOURSE_ADVANCE_DELAY", progress.DefaultAdvanceDelay),
		CodeStyle:    getEnv("ROSCOURSE_CODE_STYLE", highlight.DefaultStyle),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.AdvanceDelay <= 0 {
		return fmt.Errorf("ROSCOURSE_ADVANCE_DELAY must be > 0, got %s", c.AdvanceDelay)
	}
	if c.CodeStyle == "" {
		return fmt.Errorf("ROSCOURSE_CODE_STYLE cannot be empty")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("ROSCOURSE_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
