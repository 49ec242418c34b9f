package records

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/location"
	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// refreshPageSize is how many live records RefreshLive loads per store call.
const refreshPageSize = 100

// WeatherFetcher is the part of weather.Service the records service needs.
type WeatherFetcher interface {
	GetWeather(ctx context.Context, loc string, rng *daterange.Range) (weather.Result, error)
}

// Service manages weather records on top of a Store.
type Service struct {
	weather WeatherFetcher
	store   Store
	now     func() time.Time
}

func NewService(fetcher WeatherFetcher, store Store) *Service {
	return &Service{
		weather: fetcher,
		store:   store,
		now:     time.Now,
	}
}

// CreateInput is the payload for a new record.
type CreateInput struct {
	Location string
	Start    daterange.Date
	End      daterange.Date
}

// UpdateInput changes a record. Nil fields keep their current value.
// UpdateWeatherData forces a refetch even when nothing else changed.
type UpdateInput struct {
	Location          *string
	Start             *daterange.Date
	End               *daterange.Date
	UpdateWeatherData bool
}

// Pagination describes the page returned by List.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page is one page of records.
type Page struct {
	Records    []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Create fetches weather for the location and range and stores the result.
// The location and range are validated by the weather lookup itself, so an
// invalid request never reaches the store.
func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	rng := daterange.Range{Start: in.Start, End: in.End}
	res, err := s.weather.GetWeather(ctx, in.Location, &rng)
	if err != nil {
		return Record{}, err
	}

	now := s.now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		DateRange: rng,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rec.applyLocation(res)
	rec.applyWeather(res)

	if err := s.store.Insert(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("save weather record: %w", err)
	}
	log.Printf("INFO: created weather record %s for %q (%s to %s)", rec.ID, rec.Location, rng.Start, rng.End)
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.store.Get(ctx, id)
}

// List returns a page of records matching f.
func (s *Service) List(ctx context.Context, f Filter) (Page, error) {
	f = f.Normalized()
	recs, total, err := s.store.List(ctx, f)
	if err != nil {
		return Page{}, fmt.Errorf("list weather records: %w", err)
	}
	if recs == nil {
		recs = []Record{}
	}
	return Page{
		Records: recs,
		Pagination: Pagination{
			Page:  f.Page,
			Limit: f.Limit,
			Total: total,
			Pages: (total + f.Limit - 1) / f.Limit,
		},
	}, nil
}

// Update applies in to the record with the given id. A new location is
// resolved through the provider; a changed range, or UpdateWeatherData,
// replaces the stored weather.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}

	locChanged := in.Location != nil && !strings.EqualFold(strings.TrimSpace(*in.Location), rec.Location)
	rangeChanged := in.Start != nil || in.End != nil
	if !locChanged && !rangeChanged && !in.UpdateWeatherData {
		return rec, nil
	}

	rng := rec.DateRange
	if in.Start != nil {
		rng.Start = *in.Start
	}
	if in.End != nil {
		rng.End = *in.End
	}

	query := location.FormatCoordinates(rec.Latitude, rec.Longitude)
	if locChanged {
		query = *in.Location
	}

	res, err := s.weather.GetWeather(ctx, query, &rng)
	if err != nil {
		return Record{}, err
	}

	if locChanged {
		rec.applyLocation(res)
	}
	if rangeChanged || in.UpdateWeatherData {
		rec.DateRange = rng
		rec.applyWeather(res)
	}
	rec.UpdatedAt = s.now().UTC()

	if err := s.store.Replace(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("update weather record %s: %w", id, err)
	}
	log.Printf("INFO: updated weather record %s", id)
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("INFO: deleted weather record %s", id)
	return nil
}

// Export returns the records matching f, newest first, capped at
// DefaultExportLimit unless f sets a limit.
func (s *Service) Export(ctx context.Context, f Filter) ([]Record, error) {
	f.SortBy = SortCreatedAt
	f.Ascending = false
	f.Page = 1
	if f.Limit <= 0 {
		f.Limit = DefaultExportLimit
	}
	recs, _, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("export weather records: %w", err)
	}
	return recs, nil
}

// RefreshLive refetches weather for every record that is not historical yet.
// Records whose range has ended since the last run switch to historical
// data. Failures are logged per record; the count of refreshed records is
// returned.
func (s *Service) RefreshLive(ctx context.Context) (int, error) {
	live := false
	var pending []Record
	for page := 1; ; page++ {
		recs, total, err := s.store.List(ctx, Filter{
			Historical: &live,
			SortBy:     SortCreatedAt,
			Ascending:  true,
			Limit:      refreshPageSize,
			Page:       page,
		})
		if err != nil {
			return 0, fmt.Errorf("list live records: %w", err)
		}
		pending = append(pending, recs...)
		if len(recs) == 0 || page*refreshPageSize >= total {
			break
		}
	}

	refreshed := 0
	for _, rec := range pending {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}

		query := location.FormatCoordinates(rec.Latitude, rec.Longitude)
		rng := rec.DateRange
		res, err := s.weather.GetWeather(ctx, query, &rng)
		if err != nil {
			log.Printf("ERROR: refresh of record %s failed: %v", rec.ID, err)
			metrics.RecordsRefreshed.WithLabelValues("error").Inc()
			continue
		}

		rec.applyWeather(res)
		rec.UpdatedAt = s.now().UTC()
		if err := s.store.Replace(ctx, rec); err != nil {
			log.Printf("ERROR: saving refreshed record %s failed: %v", rec.ID, err)
			metrics.RecordsRefreshed.WithLabelValues("error").Inc()
			continue
		}
		metrics.RecordsRefreshed.WithLabelValues("ok").Inc()
		refreshed++
	}
	return refreshed, nil
}
