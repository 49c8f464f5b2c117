// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every configuration variable.
const EnvPrefix = "ZELENKO_"

// Storage backends.
const (
	BackendDB     = "db"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all Zelenko data ($XDG_DATA_HOME/zelenko)
	BaseDir string `env:"DATA_DIR"`

	Storage   StorageConfig   `envPrefix:"STORAGE_"`
	Telemetry TelemetryConfig `envPrefix:"TELEMETRY_"`

	// IANA zone used for calendar-day math; empty means the system zone.
	Timezone string `env:"TIMEZONE"`
}

// StorageConfig selects where snapshots are kept.
type StorageConfig struct {
	// One of "db", "file" or "memory"
	Backend string `env:"BACKEND" envDefault:"db"`
	// Debug logs every SQL statement
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// TelemetryConfig holds anonymous usage tracking settings.
type TelemetryConfig struct {
	Enabled bool `env:"TRACKING_ENABLED" envDefault:"true"`
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory. Variables already set win over the file.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv parses the environment without touching the filesystem.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the parser cannot.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendDB, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s, %s or %s)",
			c.Storage.Backend, BackendDB, BackendFile, BackendMemory)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	paths := GetPaths(cfg)
	dirs := []string{
		cfg.BaseDir,
		paths.Images,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
