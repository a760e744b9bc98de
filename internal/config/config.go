// Package config loads portfolio configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the build and serve commands.
// A .env file in the working directory is loaded by main before Load runs.
type Config struct {
	Port             string `env:"PORT"                   envDefault:"8080"`
	OutDir           string `env:"PORTFOLIO_OUT_DIR"      envDefault:"dist"`
	ImagesDir        string `env:"PORTFOLIO_IMAGES_DIR"   envDefault:"images"`
	HideNativeCursor bool   `env:"PORTFOLIO_HIDE_CURSOR"  envDefault:"true"`
	CursorColor      string `env:"PORTFOLIO_CURSOR_COLOR" envDefault:"#44614D"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the preview server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
