// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server and seeder settings.
type Config struct {
	Port            int           `env:"PORT"             envDefault:"8080"`
	DBPath          string        `env:"DB_PATH"          envDefault:"./data/karaoke.db"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"text"`
	SeedOnStart     bool          `env:"SEED_ON_START"    envDefault:"false"`
	FixtureVersion  int           `env:"FIXTURE_VERSION"  envDefault:"1"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment into a Config and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH required")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q, want text or json", c.LogFormat)
	}
	if c.FixtureVersion < 1 {
		return fmt.Errorf("invalid FIXTURE_VERSION %d", c.FixtureVersion)
	}
	return nil
}
