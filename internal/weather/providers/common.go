package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 4 << 20

// WeatherAPI reports unknown locations as 400 with this error code.
const weatherAPINoMatchingLocation = 1006

var (
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// HTTPClientConfig bundles the HTTP client and the optional circuit breaker.
// Calls are never retried: a failure is surfaced to the caller as-is.
type HTTPClientConfig struct {
	Client  *http.Client
	Breaker *gobreaker.CircuitBreaker
}

// NewCircuitBreaker returns a breaker that opens after repeated provider
// failures. Unknown locations and bad keys do not count as failures.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		IsSuccessful: func(err error) bool {
			return err == nil ||
				weather.IsProviderKind(err, weather.ProviderNotFound) ||
				weather.IsProviderKind(err, weather.ProviderUnauthorized)
		},
	})
}

// getJSON performs one GET against the provider and decodes the body into out.
// Every failure comes back as a *weather.ProviderError.
func getJSON(ctx context.Context, cfg HTTPClientConfig, provider, endpoint, rawURL string, out any) error {
	if cfg.Client == nil {
		return weather.NewProviderError(provider, 0, errNoHTTPClient)
	}

	start := time.Now()
	body, err := cfg.execute(provider, func() ([]byte, error) {
		return fetch(ctx, cfg.Client, provider, rawURL)
	})
	metrics.ProviderLatency.WithLabelValues(provider, endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderRequests.WithLabelValues(provider, endpoint, outcome(err)).Inc()
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.ProviderRequests.WithLabelValues(provider, endpoint, "decode_error").Inc()
		return weather.NewProviderError(provider, 0, fmt.Errorf("decode %s response: %w", endpoint, err))
	}

	metrics.ProviderRequests.WithLabelValues(provider, endpoint, "ok").Inc()
	return nil
}

func (c HTTPClientConfig) execute(provider string, fn func() ([]byte, error)) ([]byte, error) {
	if c.Breaker == nil {
		return fn()
	}

	result, err := c.Breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, weather.NewProviderError(provider, 0, fmt.Errorf("%w: %v", errCircuitOpen, err))
	}
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, weather.NewProviderError(provider, 0, fmt.Errorf("unexpected result type from circuit breaker"))
	}
	return body, nil
}

func fetch(ctx context.Context, client *http.Client, provider, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, weather.NewProviderError(provider, 0, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := client.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which carries the API key.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, weather.NewProviderError(provider, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, weather.NewProviderError(provider, 0, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(provider, resp.StatusCode, body)
	}
	return body, nil
}

// statusError maps a non-2xx response to a ProviderError, using the error
// message from the body when the provider sends one.
func statusError(provider string, status int, body []byte) *weather.ProviderError {
	var payload struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Reason string `json:"reason"`
	}
	// Providers disagree on the error shape; a body that does not fit just
	// leaves the fields empty.
	_ = json.Unmarshal(body, &payload)

	if status == http.StatusBadRequest && payload.Error.Code == weatherAPINoMatchingLocation {
		status = http.StatusNotFound
	}

	detail := fmt.Errorf("status %d", status)
	switch {
	case payload.Error.Message != "":
		detail = fmt.Errorf("status %d: %s", status, payload.Error.Message)
	case payload.Reason != "":
		detail = fmt.Errorf("status %d: %s", status, payload.Reason)
	}
	return weather.NewProviderError(provider, status, detail)
}

func outcome(err error) string {
	var pe *weather.ProviderError
	if errors.As(err, &pe) {
		return pe.Kind.String()
	}
	return "error"
}
