package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all library configuration.
type Config struct {
	Logging LogConfig
}

// LogConfig holds logging configuration for initialization and binding.
type LogConfig struct {
	Level       string `envconfig:"SPECIALS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"SPECIALS_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
