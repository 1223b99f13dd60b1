package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	Database struct {
		Driver string `yaml:"driver"` // sqlite3 or postgres
		Source string `yaml:"source"` // file path or DSN
	} `yaml:"database"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

// Load reads a YAML configuration file. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Database.Driver != "sqlite3" && cfg.Database.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return cfg, nil
}

// defaults returns the baseline configuration
func defaults() *Config {
	cfg := &Config{
		Port:     8080,
		LogLevel: "info",
	}
	cfg.Database.Driver = "sqlite3"
	cfg.Database.Source = "pantrychef.db"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 9090
	return cfg
}
