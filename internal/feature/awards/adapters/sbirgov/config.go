// Package sbirgov provides a client for the SBIR.gov public awards API.
package sbirgov

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration for the SBIR.gov API client.
type Config struct {
	// BaseURL is the API origin (e.g., "https://api.www.sbir.gov").
	BaseURL string `env:"SBIR_BASE_URL" envDefault:"https://api.www.sbir.gov"`
	// Rows is the fixed page window. The API is queried once per firm with
	// start=0; totals beyond Rows are truncated, by documented limitation.
	Rows int `env:"SBIR_ROWS" envDefault:"1000"`
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `env:"SBIR_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads SBIR.gov client configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
