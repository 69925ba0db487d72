// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads booktrack configuration from
// ~/.booktrack/config.yaml with BOOKTRACK_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Zero configuration works: every
// field has a default suitable for a fresh machine.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	Storage  string `mapstructure:"storage"` // sqlite or memory
	LogLevel string `mapstructure:"log_level"`
	Theme    string `mapstructure:"theme"`

	Catalog CatalogConfig `mapstructure:"catalog"`
}

// CatalogConfig configures the remote book catalog client.
type CatalogConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxResults int           `mapstructure:"max_results"`
}

// DefaultDataDir is ~/.booktrack, or a relative fallback when the home
// directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".booktrack"
	}
	return filepath.Join(home, ".booktrack")
}

// Load reads the config file if present and applies environment
// overrides. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("storage", "sqlite")
	v.SetDefault("log_level", "info")
	v.SetDefault("theme", "system")
	v.SetDefault("catalog.base_url", "https://www.googleapis.com/books/v1")
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.max_results", 20)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultDataDir())

	v.SetEnvPrefix("BOOKTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.Storage {
	case "sqlite", "memory":
	default:
		return nil, fmt.Errorf("unknown storage backend %q (choose sqlite or memory)", cfg.Storage)
	}

	return cfg, nil
}

// DBPath is the SQLite database location under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "booktrack.db")
}
