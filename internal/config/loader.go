package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from a .env file (if present) and the environment.
// Priority: real ENV > .env > struct defaults.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations that would start an unsafe server.
// PRE: cfg fields are populated by Load
// POST: returns nil when the config is safe to run with
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database url cannot be empty")
	}
	if c.Port == "" {
		return errors.New("port cannot be empty")
	}
	if c.IsProduction() && c.SecretKey == "dev-secret-key" {
		return errors.New("SECRET_KEY must be set in production")
	}
	return nil
}
