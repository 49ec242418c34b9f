package weather

import (
	"context"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/landmarks"
)

// ProviderLocation is the provider's view of the resolved place.
type ProviderLocation struct {
	Name       string
	Region     string
	Country    string
	Lat        float64
	Lon        float64
	TimezoneID string
	LocalTime  string
}

// ProviderCurrent holds current conditions in provider units
// (Celsius, km/h, millibars).
type ProviderCurrent struct {
	TempC      float64
	FeelsLikeC float64
	Humidity   float64
	PressureMb float64
	WindKph    float64
	WindDegree int
	Text       string
	Icon       string
}

// ProviderDay is one day of forecast or history in provider units.
type ProviderDay struct {
	Date          daterange.Date
	MinTempC      float64
	MaxTempC      float64
	AvgTempC      float64
	AvgHumidity   float64
	AvgPressureMb float64
	MaxWindKph    float64
	AvgWindDegree int
	Text          string
	Icon          string
}

// ForecastReading is a provider's live answer: current conditions plus
// upcoming days in chronological order.
type ForecastReading struct {
	Location ProviderLocation
	Current  ProviderCurrent
	Days     []ProviderDay
}

// HistoryReading is a provider's aggregate for one past day.
type HistoryReading struct {
	Location ProviderLocation
	Day      ProviderDay
}

// Provider abstracts the upstream weather API. query is either free text
// (the provider geocodes it) or a "lat,lon" pair.
type Provider interface {
	Name() string
	Forecast(ctx context.Context, query string, days int) (ForecastReading, error)
	History(ctx context.Context, query string, date daterange.Date) (HistoryReading, error)
}

// LandmarkResolver substitutes coordinates for well-known place names.
type LandmarkResolver interface {
	Resolve(text string) (landmarks.Landmark, bool)
}
