package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment
// variables.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Host            string `env:"HOST" envDefault:"0.0.0.0"`
	Port            string `env:"PORT" envDefault:"3001"`
	ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"15"`
	WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
}

// StoreConfig selects order persistence. An empty OrdersFile keeps orders in
// memory only; orders are then lost on restart.
type StoreConfig struct {
	OrdersFile string `env:"ORDERS_FILE"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
