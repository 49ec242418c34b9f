package weather

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/landmarks"
)

type fakeProvider struct {
	forecast    ForecastReading
	forecastErr error
	failDays    map[daterange.Date]bool

	forecastQueries []string
	historyQueries  []string
	historyDays     []daterange.Date
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Forecast(_ context.Context, query string, days int) (ForecastReading, error) {
	f.forecastQueries = append(f.forecastQueries, query)
	if f.forecastErr != nil {
		return ForecastReading{}, f.forecastErr
	}
	return f.forecast, nil
}

func (f *fakeProvider) History(_ context.Context, query string, date daterange.Date) (HistoryReading, error) {
	f.historyQueries = append(f.historyQueries, query)
	f.historyDays = append(f.historyDays, date)
	if f.failDays[date] {
		return HistoryReading{}, NewProviderError("fake", 500, nil)
	}
	return HistoryReading{
		Location: ProviderLocation{Name: "London", Country: "United Kingdom", Lat: 51.52, Lon: -0.11},
		Day: ProviderDay{
			Date:          date,
			MinTempC:      float64(date.Day) - 0.4,
			MaxTempC:      float64(date.Day) + 5.6,
			AvgTempC:      float64(date.Day) + 2.5,
			AvgHumidity:   70,
			AvgPressureMb: 1013.25,
			MaxWindKph:    36,
			AvgWindDegree: 180,
			Text:          fmt.Sprintf("day %d", date.Day),
			Icon:          "//cdn.weatherapi.com/weather/64x64/day/113.png",
		},
	}, nil
}

func newTestService(p Provider, resolver LandmarkResolver) *Service {
	s := NewService(p, resolver)
	s.now = func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	}
	return s
}

func liveReading(days int) ForecastReading {
	r := ForecastReading{
		Location: ProviderLocation{Name: "Paris", Region: "Ile-de-France", Country: "France", Lat: 48.87, Lon: 2.33, TimezoneID: "Europe/Paris", LocalTime: "2024-06-15 14:00"},
		Current: ProviderCurrent{
			TempC: 21.6, FeelsLikeC: 20.4, Humidity: 55, PressureMb: 1016, WindKph: 36, WindDegree: 250,
			Text: "Partly cloudy", Icon: "//cdn.weatherapi.com/weather/64x64/day/116.png",
		},
	}
	start := daterange.MustParseDate("2024-06-15")
	for i := 0; i < days; i++ {
		r.Days = append(r.Days, ProviderDay{Date: start.AddDays(i), MinTempC: 12.5, MaxTempC: 24.49, Text: "Sunny", Icon: "sun.png"})
	}
	return r
}

func rangeOf(start, end string) *daterange.Range {
	return &daterange.Range{Start: daterange.MustParseDate(start), End: daterange.MustParseDate(end)}
}

func TestGetWeatherLive(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(7)}
	svc := newTestService(p, nil)

	res, err := svc.GetWeather(context.Background(), "  Paris ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.forecastQueries) != 1 || p.forecastQueries[0] != "Paris" {
		t.Fatalf("expected one forecast call for Paris, got %v", p.forecastQueries)
	}
	if len(p.historyQueries) != 0 {
		t.Fatalf("live mode must not call history, got %d calls", len(p.historyQueries))
	}
	if res.IsHistorical || res.DailyData != nil {
		t.Errorf("expected live result, got isHistorical=%v dailyData=%v", res.IsHistorical, res.DailyData)
	}
	if len(res.Forecast) != ForecastDays {
		t.Errorf("expected %d forecast days, got %d", ForecastDays, len(res.Forecast))
	}
	if res.Current.WindSpeed != 10.0 {
		t.Errorf("expected 36 km/h to be 10.0 m/s, got %v", res.Current.WindSpeed)
	}
	if res.Current.Temperature != 22 || res.Current.FeelsLike != 20 {
		t.Errorf("expected rounded temperatures 22/20, got %v/%v", res.Current.Temperature, res.Current.FeelsLike)
	}
	if res.Forecast[0].Temperature.Min != 13 || res.Forecast[0].Temperature.Max != 24 {
		t.Errorf("unexpected forecast temperatures %+v", res.Forecast[0].Temperature)
	}
	if res.Location.State != "Ile-de-France" || res.Location.Timezone != "Europe/Paris" {
		t.Errorf("unexpected location %+v", res.Location)
	}
	for i := 1; i < len(res.Forecast); i++ {
		if !res.Forecast[i-1].Date.Before(res.Forecast[i].Date) {
			t.Errorf("forecast is not chronological at %d", i)
		}
	}
}

func TestGetWeatherInvalidLocationMakesNoCalls(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(5)}
	svc := newTestService(p, nil)

	for _, in := range []string{"", "a", "91,0"} {
		_, err := svc.GetWeather(context.Background(), in, nil)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("GetWeather(%q): expected ValidationError, got %v", in, err)
		}
	}
	if len(p.forecastQueries)+len(p.historyQueries) != 0 {
		t.Errorf("expected no provider calls, got %d", len(p.forecastQueries)+len(p.historyQueries))
	}
}

func TestGetWeatherRejectsBadRangeBeforeAnyCall(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(5)}
	svc := newTestService(p, nil)

	tests := []*daterange.Range{
		rangeOf("2024-05-10", "2024-05-10"),
		rangeOf("2024-05-10", "2024-05-01"),
		rangeOf("2024-06-20", "2024-06-25"),
	}
	for _, rng := range tests {
		_, err := svc.GetWeather(context.Background(), "London", rng)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("range %s..%s: expected ValidationError, got %v", rng.Start, rng.End, err)
			continue
		}
		if ve.Field != "dateRange" {
			t.Errorf("expected dateRange field, got %q", ve.Field)
		}
	}
	if calls := len(p.forecastQueries) + len(p.historyQueries); calls != 0 {
		t.Errorf("expected no provider calls, got %d", calls)
	}
}

func TestGetWeatherNonHistoricalRangeUsesLive(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(5)}
	svc := newTestService(p, nil)

	res, err := svc.GetWeather(context.Background(), "London", rangeOf("2024-06-10", "2024-06-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsHistorical {
		t.Error("range ending in the future should produce a live result")
	}
	if len(p.forecastQueries) != 1 || len(p.historyQueries) != 0 {
		t.Errorf("expected exactly one forecast call, got forecast=%d history=%d", len(p.forecastQueries), len(p.historyQueries))
	}
}

func TestGetWeatherHistoricalCapsAtTenDays(t *testing.T) {
	p := &fakeProvider{}
	svc := newTestService(p, nil)

	res, err := svc.GetWeather(context.Background(), "London", rangeOf("2024-05-01", "2024-05-12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.historyDays) != MaxHistoricalDays {
		t.Fatalf("expected %d history calls, got %d", MaxHistoricalDays, len(p.historyDays))
	}
	for i, d := range p.historyDays {
		want := daterange.MustParseDate("2024-05-01").AddDays(i)
		if d != want {
			t.Errorf("call %d: expected %s, got %s", i, want, d)
		}
	}
	if !res.IsHistorical || len(res.DailyData) != MaxHistoricalDays || len(res.Forecast) != MaxHistoricalDays {
		t.Errorf("unexpected historical result: historical=%v daily=%d forecast=%d", res.IsHistorical, len(res.DailyData), len(res.Forecast))
	}
}

func TestGetWeatherHistoricalSkipsFailedDays(t *testing.T) {
	start := daterange.MustParseDate("2024-05-01")
	p := &fakeProvider{failDays: map[daterange.Date]bool{
		start:            true,
		start.AddDays(1): true,
		start.AddDays(6): true,
	}}
	svc := newTestService(p, nil)

	res, err := svc.GetWeather(context.Background(), "London", rangeOf("2024-05-01", "2024-05-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.historyDays) != 10 {
		t.Errorf("expected 10 history calls, got %d", len(p.historyDays))
	}
	if !res.IsHistorical {
		t.Error("expected historical result")
	}
	if len(res.DailyData) != 7 || len(res.Forecast) != 7 {
		t.Fatalf("expected 7 days, got daily=%d forecast=%d", len(res.DailyData), len(res.Forecast))
	}

	firstOK := res.DailyData[0]
	if firstOK.Date != start.AddDays(2) {
		t.Errorf("expected first successful day %s, got %s", start.AddDays(2), firstOK.Date)
	}
	// AvgTempC for the 3rd is 5.5, which rounds to 6.
	want := CurrentConditions{
		Temperature:   6,
		FeelsLike:     6,
		Humidity:      70,
		Pressure:      1013.25,
		WindSpeed:     10,
		WindDirection: 180,
		Description:   "day 3",
		Icon:          "//cdn.weatherapi.com/weather/64x64/day/113.png",
	}
	if res.Current != want {
		t.Errorf("current = %+v, want %+v", res.Current, want)
	}
	if res.Location.Name != "London" {
		t.Errorf("unexpected location %q", res.Location.Name)
	}
	for i := range res.DailyData {
		if res.Forecast[i].Date != res.DailyData[i].Date {
			t.Errorf("forecast and daily data disagree at %d", i)
		}
		if i > 0 && !res.DailyData[i-1].Date.Before(res.DailyData[i].Date) {
			t.Errorf("daily data is not chronological at %d", i)
		}
	}
}

func TestSkippedDayIsLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	start := daterange.MustParseDate("2024-05-01")
	p := &fakeProvider{failDays: map[daterange.Date]bool{start: true}}
	svc := newTestService(p, nil)

	if _, err := svc.GetWeather(context.Background(), "London", rangeOf("2024-05-01", "2024-05-02")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "ERROR: provider fake history failed") {
		t.Fatalf("expected an ERROR line for the skipped day, got %q", buf.String())
	}
}

func TestGetWeatherHistoricalAllDaysFail(t *testing.T) {
	start := daterange.MustParseDate("2024-05-01")
	fail := map[daterange.Date]bool{}
	for i := 0; i < 3; i++ {
		fail[start.AddDays(i)] = true
	}
	p := &fakeProvider{failDays: fail}
	svc := newTestService(p, nil)

	_, err := svc.GetWeather(context.Background(), "London", rangeOf("2024-05-01", "2024-05-03"))
	if !errors.Is(err, ErrNoDataAvailable) {
		t.Fatalf("expected ErrNoDataAvailable, got %v", err)
	}
	if len(p.historyDays) != 3 {
		t.Errorf("expected 3 history calls, got %d", len(p.historyDays))
	}
}

func TestGetWeatherLandmarkSubstitution(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(5)}
	svc := newTestService(p, landmarks.NewCatalog())

	res, err := svc.GetWeather(context.Background(), "eiffel tower", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.forecastQueries[0] != "48.8584,2.2945" {
		t.Errorf("expected landmark coordinates to be sent, got %q", p.forecastQueries[0])
	}
	if res.Landmark == nil || res.Landmark.Name != "Eiffel Tower" {
		t.Errorf("expected landmark on result, got %+v", res.Landmark)
	}

	// No landmark: the text goes upstream unchanged.
	if _, err := svc.GetWeather(context.Background(), "Paris, France", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.forecastQueries[1] != "Paris, France" {
		t.Errorf("expected original text upstream, got %q", p.forecastQueries[1])
	}

	// Postal codes bypass the landmark table.
	if _, err := svc.GetWeather(context.Background(), "sw1a 1aa", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.forecastQueries[2] != "SW1A 1AA" {
		t.Errorf("expected normalized postal code upstream, got %q", p.forecastQueries[2])
	}
}

func TestGetWeatherPropagatesProviderError(t *testing.T) {
	p := &fakeProvider{forecastErr: NewProviderError("fake", 404, nil)}
	svc := newTestService(p, nil)

	_, err := svc.GetWeather(context.Background(), "Atlantis", nil)
	if !IsProviderKind(err, ProviderNotFound) {
		t.Fatalf("expected not-found provider error, got %v", err)
	}
}

func TestGetWeatherEmptyForecastIsAnError(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(0)}
	svc := newTestService(p, nil)

	if _, err := svc.GetWeather(context.Background(), "Paris", nil); !IsProviderKind(err, ProviderUnknown) {
		t.Fatalf("expected provider error for empty forecast, got %v", err)
	}
}

func TestGetWeatherByCoordinates(t *testing.T) {
	p := &fakeProvider{forecast: liveReading(5)}
	svc := newTestService(p, nil)

	if _, err := svc.GetWeatherByCoordinates(context.Background(), 40.7128, -74.006); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.forecastQueries[0] != "40.7128,-74.006" {
		t.Errorf("unexpected query %q", p.forecastQueries[0])
	}

	_, err := svc.GetWeatherByCoordinates(context.Background(), 10, 200)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Message != "Longitude must be between -180 and 180" {
		t.Errorf("expected longitude validation error, got %v", err)
	}
}

func TestKphToMS(t *testing.T) {
	tests := []struct {
		kph, want float64
	}{
		{36, 10.0},
		{0, 0},
		{10, 2.8},
		{15.1, 4.2},
	}
	for _, tt := range tests {
		if got := KphToMS(tt.kph); got != tt.want {
			t.Errorf("KphToMS(%v) = %v, want %v", tt.kph, got, tt.want)
		}
	}
}

func TestProviderErrorMessages(t *testing.T) {
	tests := []struct {
		status int
		kind   ProviderErrorKind
	}{
		{401, ProviderUnauthorized},
		{404, ProviderNotFound},
		{429, ProviderRateLimited},
		{500, ProviderUnknown},
		{0, ProviderUnknown},
	}
	for _, tt := range tests {
		err := NewProviderError("weatherapi", tt.status, nil)
		if err.Kind != tt.kind {
			t.Errorf("status %d: kind = %v, want %v", tt.status, err.Kind, tt.kind)
		}
		if err.Error() == "" {
			t.Errorf("status %d: empty message", tt.status)
		}
	}
}
