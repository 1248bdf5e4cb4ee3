package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment settings for the game binaries.
type Config struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DataDir      string `env:"DATA_DIR" envDefault:"./data"`
	CombatLogDir string `env:"COMBAT_LOG_DIR" envDefault:"./logs"`
	Seed         int64  `env:"GAME_SEED" envDefault:"0"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
