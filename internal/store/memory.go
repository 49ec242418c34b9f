package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/i474232898/weather-lookup/internal/records"
)

// MemoryStore is a concurrency-safe in-memory implementation of records.Store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: record ID
	data map[string]records.Record

	// retention: max number of records kept (0 = unlimited)
	maxRecords int
}

// NewMemoryStore creates a new MemoryStore. If maxRecords is <= 0, it is
// treated as unlimited; otherwise the oldest records are evicted first.
func NewMemoryStore(maxRecords int) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]records.Record),
		maxRecords: maxRecords,
	}
}

// Insert stores a new record and enforces retention.
func (s *MemoryStore) Insert(_ context.Context, rec records.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[rec.ID]; ok {
		return fmt.Errorf("record %s already exists", rec.ID)
	}
	s.data[rec.ID] = clone(rec)

	if s.maxRecords > 0 && len(s.data) > s.maxRecords {
		s.evictOldest(len(s.data) - s.maxRecords)
	}
	return nil
}

// evictOldest drops the n records with the earliest creation time.
// Callers must hold the write lock.
func (s *MemoryStore) evictOldest(n int) {
	all := make([]records.Record, 0, len(s.data))
	for _, r := range s.data {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	for _, r := range all[:n] {
		delete(s.data, r.ID)
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (records.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[id]
	if !ok {
		return records.Record{}, records.ErrNotFound
	}
	return clone(rec), nil
}

func (s *MemoryStore) Replace(_ context.Context, rec records.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[rec.ID]; !ok {
		return records.ErrNotFound
	}
	s.data[rec.ID] = clone(rec)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// List filters, sorts and paginates the stored records.
func (s *MemoryStore) List(_ context.Context, f records.Filter) ([]records.Record, int, error) {
	f = f.Normalized()
	needle := strings.ToLower(f.Location)

	s.mu.RLock()
	var matched []records.Record
	for _, r := range s.data {
		if matches(r, f, needle) {
			matched = append(matched, r)
		}
	}
	s.mu.RUnlock()

	less := lessFunc(f.SortBy)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !f.Ascending {
			a, b = b, a
		}
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := f.Skip()
	if start >= total {
		return []records.Record{}, total, nil
	}
	end := start + f.Limit
	if end > total {
		end = total
	}

	page := make([]records.Record, 0, end-start)
	for _, r := range matched[start:end] {
		page = append(page, clone(r))
	}
	return page, total, nil
}

func matches(r records.Record, f records.Filter, needle string) bool {
	if needle != "" && !strings.Contains(strings.ToLower(r.Location), needle) {
		return false
	}
	if !f.From.IsZero() && r.DateRange.Start.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.DateRange.Start.After(f.To) {
		return false
	}
	if f.Historical != nil && r.IsHistorical != *f.Historical {
		return false
	}
	return true
}

func lessFunc(field string) func(a, b records.Record) bool {
	switch field {
	case records.SortUpdatedAt:
		return func(a, b records.Record) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case records.SortLocation:
		return func(a, b records.Record) bool { return strings.ToLower(a.Location) < strings.ToLower(b.Location) }
	case records.SortStartDate:
		return func(a, b records.Record) bool { return a.DateRange.Start.Before(b.DateRange.Start) }
	case records.SortEndDate:
		return func(a, b records.Record) bool { return a.DateRange.End.Before(b.DateRange.End) }
	default:
		return func(a, b records.Record) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

// clone copies the slices so callers cannot reach into stored records.
func clone(r records.Record) records.Record {
	if r.Forecast != nil {
		r.Forecast = append(r.Forecast[:0:0], r.Forecast...)
	}
	if r.DailyData != nil {
		r.DailyData = append(r.DailyData[:0:0], r.DailyData...)
	}
	return r
}

var _ records.Store = (*MemoryStore)(nil)
