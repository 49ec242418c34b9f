package daterange

import (
	"errors"
	"fmt"
	"time"
)

const layout = "2006-01-02"

var (
	ErrStartNotBeforeEnd = errors.New("Start date must be before end date")
	ErrStartInFuture     = errors.New("Start date cannot be in the future")
)

// Date is a wall-clock calendar date. It carries no time of day and no zone,
// so comparisons never shift by a day across timezones.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals; it panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Midnight returns the first instant of d in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Midnight(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is an earlier calendar day than o.
func (d Date) Before(o Date) bool {
	return d.Midnight(time.UTC).Before(o.Midnight(time.UTC))
}

// After reports whether d is a later calendar day than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Days returns the inclusive number of calendar days in r.
func (r Range) Days() int {
	return Days(r.Start, r.End)
}

// Days counts start..end inclusive. UTC midnights are used so daylight-saving
// transitions cannot produce a fractional day.
func Days(start, end Date) int {
	diff := end.Midnight(time.UTC).Sub(start.Midnight(time.UTC))
	return int(diff.Hours()/24) + 1
}

// IsHistorical reports whether the window ended before now.
func IsHistorical(start, end Date) bool {
	return IsHistoricalAt(start, end, time.Now())
}

// IsHistoricalAt compares end's local midnight against now. Only the end date
// matters: a window that spans past and future is not historical.
func IsHistoricalAt(_, end Date, now time.Time) bool {
	return end.Midnight(now.Location()).Before(now)
}

// Validate rejects ranges whose start is not strictly before the end, or
// whose start lies in the future relative to now.
func Validate(start, end Date, now time.Time) error {
	if !start.Before(end) {
		return ErrStartNotBeforeEnd
	}
	if start.Midnight(now.Location()).After(now) {
		return ErrStartInFuture
	}
	return nil
}
