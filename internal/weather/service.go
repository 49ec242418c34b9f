package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/landmarks"
	"github.com/i474232898/weather-lookup/internal/location"
	"github.com/i474232898/weather-lookup/internal/metrics"
)

const (
	// ForecastDays is the number of days requested in live mode.
	ForecastDays = 5
	// MaxHistoricalDays is the upstream history limit per lookup.
	MaxHistoricalDays = 10
)

// Service decides between live and historical retrieval and assembles the
// provider's answers into a Result.
type Service struct {
	provider Provider
	resolver LandmarkResolver
	now      func() time.Time
}

// NewService creates a new Service. resolver may be nil to disable landmark
// substitution.
func NewService(provider Provider, resolver LandmarkResolver) *Service {
	return &Service{
		provider: provider,
		resolver: resolver,
		now:      time.Now,
	}
}

// GetWeather looks up weather for a free-form location. With no range, or a
// range that has not ended yet, it returns the live forecast. A range that
// ended in the past is served day by day from the history endpoint.
func (s *Service) GetWeather(ctx context.Context, loc string, rng *daterange.Range) (Result, error) {
	class := location.Classify(loc)
	if !class.Valid {
		return Result{}, newValidationError("location", class.Error)
	}

	now := s.now()
	if rng != nil {
		if err := daterange.Validate(rng.Start, rng.End, now); err != nil {
			return Result{}, newValidationError("dateRange", err.Error())
		}
	}

	query, lm := s.resolveQuery(class)

	var (
		res Result
		err error
	)
	if rng != nil && daterange.IsHistoricalAt(rng.Start, rng.End, now) {
		log.Printf("DEBUG: fetching historical weather for %q from %s to %s", query, rng.Start, rng.End)
		res, err = s.historical(ctx, query, *rng)
	} else {
		log.Printf("DEBUG: fetching live weather for %q", query)
		res, err = s.live(ctx, query)
	}
	if err != nil {
		return Result{}, err
	}

	res.Landmark = lm
	return res, nil
}

// GetWeatherByCoordinates is the live lookup for an explicit lat/lon pair.
func (s *Service) GetWeatherByCoordinates(ctx context.Context, lat, lon float64) (Result, error) {
	if !location.ValidCoordinates(lat, lon) {
		msg := location.ErrLatitude
		if lat >= -90 && lat <= 90 {
			msg = location.ErrLongitude
		}
		return Result{}, newValidationError("location", msg)
	}
	return s.GetWeather(ctx, location.FormatCoordinates(lat, lon), nil)
}

// resolveQuery picks what to send upstream. Only place names go through the
// landmark table; a hit is sent as coordinates so the provider does not have
// to geocode an ambiguous name.
func (s *Service) resolveQuery(class location.Result) (string, *landmarks.Landmark) {
	if class.Kind != location.KindPlaceName || s.resolver == nil {
		return class.Normalized, nil
	}

	lm, ok := s.resolver.Resolve(class.Normalized)
	if !ok {
		metrics.LandmarkLookups.WithLabelValues("miss").Inc()
		return class.Normalized, nil
	}

	metrics.LandmarkLookups.WithLabelValues("hit").Inc()
	log.Printf("DEBUG: %q resolved to landmark %s", class.Normalized, lm.Name)
	return location.FormatCoordinates(lm.Latitude, lm.Longitude), &lm
}

func (s *Service) live(ctx context.Context, query string) (Result, error) {
	reading, err := s.provider.Forecast(ctx, query, ForecastDays)
	if err != nil {
		return Result{}, err
	}
	if len(reading.Days) == 0 {
		return Result{}, NewProviderError(s.provider.Name(), 0, errors.New("provider returned no forecast days"))
	}
	return assembleLive(reading, ForecastDays), nil
}

// historical fetches each day of rng in order, one call at a time. A failed
// day is logged and skipped; the lookup only fails when no day succeeds.
func (s *Service) historical(ctx context.Context, query string, rng daterange.Range) (Result, error) {
	days := rng.Days()
	if days > MaxHistoricalDays {
		log.Printf("INFO: historical range %s..%s spans %d days; limiting to %d", rng.Start, rng.End, days, MaxHistoricalDays)
		days = MaxHistoricalDays
	}

	readings := make([]HistoryReading, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		day := rng.Start.AddDays(i)
		r, err := s.provider.History(ctx, query, day)
		if err != nil {
			log.Printf("ERROR: provider %s history failed for %q on %s: %v", s.provider.Name(), query, day, err)
			metrics.HistoricalDaysSkipped.Inc()
			continue
		}
		readings = append(readings, r)
	}

	if len(readings) == 0 {
		return Result{}, fmt.Errorf("%w (%s to %s)", ErrNoDataAvailable, rng.Start, rng.End)
	}
	return assembleHistorical(readings), nil
}
