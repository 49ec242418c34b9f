package weather

import (
	"errors"
	"fmt"
)

// ErrNoDataAvailable is returned when every per-day call of a historical
// lookup failed.
var ErrNoDataAvailable = errors.New("no historical weather data available for the specified date range")

// ValidationError reports bad caller input. It is always raised before any
// provider call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// ProviderErrorKind classifies a failed provider call.
type ProviderErrorKind int

const (
	ProviderUnknown ProviderErrorKind = iota
	ProviderUnauthorized
	ProviderNotFound
	ProviderRateLimited
)

func (k ProviderErrorKind) String() string {
	switch k {
	case ProviderUnauthorized:
		return "unauthorized"
	case ProviderNotFound:
		return "not_found"
	case ProviderRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// ProviderError is a failed call to the upstream weather API.
type ProviderError struct {
	Kind       ProviderErrorKind
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError builds a ProviderError from an HTTP status code. A zero
// status means the request never got a response.
func NewProviderError(provider string, status int, err error) *ProviderError {
	pe := &ProviderError{Provider: provider, StatusCode: status, Err: err}
	switch status {
	case 401:
		pe.Kind = ProviderUnauthorized
		pe.Message = "Invalid API key. Please check your WeatherAPI key."
	case 404:
		pe.Kind = ProviderNotFound
		pe.Message = "Location not found. Please check the location and try again."
	case 429:
		pe.Kind = ProviderRateLimited
		pe.Message = "API rate limit exceeded. Please try again later."
	default:
		pe.Kind = ProviderUnknown
		detail := "unexpected response"
		if err != nil {
			detail = err.Error()
		} else if status != 0 {
			detail = fmt.Sprintf("status %d", status)
		}
		pe.Message = "Weather service error: " + detail
	}
	return pe
}

// IsProviderKind reports whether err is a ProviderError of the given kind.
func IsProviderKind(err error, kind ProviderErrorKind) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Kind == kind
}
