// Package di provides dependency injection factories for creating application components.
package di

import (
	"sbir_backend/internal/feature/awards/adapters/sbirgov"
	infrahttp "sbir_backend/internal/platform/http"
)

// NewAwardsAPI creates a fully configured SBIR.gov repository with HTTP client.
func NewAwardsAPI() (*sbirgov.Repository, error) {
	cfg, err := sbirgov.LoadConfig()
	if err != nil {
		return nil, err
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return sbirgov.NewRepository(cfg, httpClient), nil
}
