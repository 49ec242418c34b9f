package cmd

import (
	"net/http"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/landmarks"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

// newProvider builds the upstream adapter selected by cfg.Provider.
func newProvider(cfg *config.AppConfig) weather.Provider {
	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	switch cfg.Provider {
	case config.ProviderOpenMeteo:
		p := providers.NewOpenMeteoProvider(httpClient)
		if cfg.CircuitBreaker {
			p = p.WithCircuitBreaker()
		}
		return p
	default:
		p := providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey)
		if cfg.WeatherAPIBaseURL != "" {
			p = p.WithBaseURL(cfg.WeatherAPIBaseURL)
		}
		if cfg.CircuitBreaker {
			p = p.WithCircuitBreaker()
		}
		return p
	}
}

func newWeatherService(cfg *config.AppConfig, catalog *landmarks.Catalog) *weather.Service {
	return weather.NewService(newProvider(cfg), catalog)
}
