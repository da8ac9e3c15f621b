package config

import (
	"fmt"
	"os"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/scoring"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field has a working
// default, so a missing config file is not an error.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Env  string `yaml:"env"` // "production" switches gin to release mode
	} `yaml:"server"`

	Database struct {
		// SQLitePath enables the run-history recorder when set.
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	// Scoring overrides the default discipline-scoring policy when present.
	Scoring *scoring.Config `yaml:"scoring"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A nonexistent path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Port = "8080"

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("API_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	return cfg, nil
}

// ScoringConfig returns the configured scoring policy, or the default one.
func (c *Config) ScoringConfig() scoring.Config {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return scoring.DefaultConfig()
}
