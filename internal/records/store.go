package records

import (
	"context"
	"errors"

	"github.com/i474232898/weather-lookup/internal/daterange"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("weather record not found")

// Sortable fields accepted by Filter.SortBy.
const (
	SortCreatedAt = "createdAt"
	SortUpdatedAt = "updatedAt"
	SortLocation  = "location"
	SortStartDate = "startDate"
	SortEndDate   = "endDate"
)

const (
	DefaultLimit       = 50
	DefaultExportLimit = 1000
)

// Filter selects and orders records. Zero values mean "no constraint".
// From and To bound the start of the record's date range, both inclusive.
type Filter struct {
	Location   string
	From       daterange.Date
	To         daterange.Date
	Historical *bool
	SortBy     string
	Ascending  bool
	Limit      int
	Page       int
}

// Normalized fills in the defaults: newest first by creation time, first
// page, DefaultLimit records.
func (f Filter) Normalized() Filter {
	if f.SortBy == "" {
		f.SortBy = SortCreatedAt
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return f
}

// Skip is the number of matching records before the requested page.
func (f Filter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// Store persists records. Implementations must be safe for concurrent use.
type Store interface {
	Insert(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	Replace(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	// List returns one page of matching records and the total match count.
	List(ctx context.Context, f Filter) ([]Record, int, error)
}
