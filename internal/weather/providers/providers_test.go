package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const forecastBody = `{
  "location": {"name": "London", "region": "City of London, Greater London", "country": "United Kingdom",
               "lat": 51.52, "lon": -0.11, "tz_id": "Europe/London", "localtime": "2024-06-15 12:00"},
  "current": {"temp_c": 18.4, "feelslike_c": 17.6, "humidity": 63, "pressure_mb": 1016,
              "wind_kph": 36, "wind_degree": 250, "condition": {"text": "Partly cloudy", "icon": "//cdn/116.png"}},
  "forecast": {"forecastday": [
    {"date": "2024-06-15", "day": {"maxtemp_c": 21.2, "mintemp_c": 12.8, "avgtemp_c": 16.9, "maxwind_kph": 20,
                                    "avghumidity": 70, "condition": {"text": "Sunny", "icon": "//cdn/113.png"}}},
    {"date": "2024-06-16", "day": {"maxtemp_c": 19.0, "mintemp_c": 11.1, "avgtemp_c": 15.0, "maxwind_kph": 18,
                                    "avghumidity": 75, "condition": {"text": "Light rain", "icon": "//cdn/296.png"}}}
  ]}
}`

const historyBody = `{
  "location": {"name": "London", "region": "", "country": "United Kingdom",
               "lat": 51.52, "lon": -0.11, "tz_id": "Europe/London", "localtime": "2024-06-15 12:00"},
  "forecast": {"forecastday": [
    {"date": "2024-05-01", "day": {"maxtemp_c": 15.5, "mintemp_c": 7.2, "avgtemp_c": 11.4, "maxwind_kph": 36,
                                    "avghumidity": 81}}
  ]}
}`

func newWeatherAPIServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var last http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestWeatherAPIForecast(t *testing.T) {
	srv, last := newWeatherAPIServer(t, http.StatusOK, forecastBody)
	p := NewWeatherAPIProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

	reading, err := p.Forecast(context.Background(), "London", 5)
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}

	if last.URL.Path != "/forecast.json" {
		t.Fatalf("expected /forecast.json, got %s", last.URL.Path)
	}
	q := last.URL.Query()
	if q.Get("key") != "secret" || q.Get("q") != "London" || q.Get("days") != "5" {
		t.Fatalf("unexpected query %v", q)
	}

	if reading.Location.Name != "London" || reading.Location.TimezoneID != "Europe/London" {
		t.Fatalf("unexpected location %+v", reading.Location)
	}
	// Units stay as the provider sent them; conversion happens in the service.
	if reading.Current.WindKph != 36 || reading.Current.TempC != 18.4 {
		t.Fatalf("unexpected current %+v", reading.Current)
	}
	if len(reading.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(reading.Days))
	}
	if reading.Days[1].Date != daterange.MustParseDate("2024-06-16") || reading.Days[1].Text != "Light rain" {
		t.Fatalf("unexpected second day %+v", reading.Days[1])
	}
}

func TestWeatherAPIHistoryDefaults(t *testing.T) {
	srv, last := newWeatherAPIServer(t, http.StatusOK, historyBody)
	p := NewWeatherAPIProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

	date := daterange.MustParseDate("2024-05-01")
	reading, err := p.History(context.Background(), "London", date)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}

	if last.URL.Path != "/history.json" || last.URL.Query().Get("dt") != "2024-05-01" {
		t.Fatalf("unexpected request %s?%s", last.URL.Path, last.URL.RawQuery)
	}

	day := reading.Day
	if day.Date != date {
		t.Fatalf("expected date %s, got %s", date, day.Date)
	}
	if day.AvgPressureMb != defaultPressureMb {
		t.Fatalf("expected default pressure, got %v", day.AvgPressureMb)
	}
	if day.Text != defaultDescription || day.Icon != defaultIcon {
		t.Fatalf("expected default condition, got %q %q", day.Text, day.Icon)
	}
	if day.AvgWindDegree != 0 || day.MaxWindKph != 36 || day.AvgTempC != 11.4 {
		t.Fatalf("unexpected day %+v", day)
	}
}

func TestWeatherAPIStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   weather.ProviderErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"code":2006,"message":"API key is invalid."}}`, weather.ProviderUnauthorized},
		{"not found", http.StatusNotFound, `{}`, weather.ProviderNotFound},
		{"no matching location", http.StatusBadRequest, `{"error":{"code":1006,"message":"No matching location found."}}`, weather.ProviderNotFound},
		{"other bad request", http.StatusBadRequest, `{"error":{"code":1003,"message":"Parameter q is missing."}}`, weather.ProviderUnknown},
		{"rate limited", http.StatusTooManyRequests, ``, weather.ProviderRateLimited},
		{"server error", http.StatusInternalServerError, `oops`, weather.ProviderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newWeatherAPIServer(t, tt.status, tt.body)
			p := NewWeatherAPIProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

			_, err := p.Forecast(context.Background(), "Nowhere", 5)
			if err == nil {
				t.Fatal("expected error")
			}
			if !weather.IsProviderKind(err, tt.kind) {
				t.Fatalf("expected kind %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestWeatherAPIErrorDoesNotLeakKey(t *testing.T) {
	srv, _ := newWeatherAPIServer(t, http.StatusInternalServerError, `{"error":{"code":9999,"message":"Internal application error."}}`)
	p := NewWeatherAPIProvider(srv.Client(), "top-secret").WithBaseURL(srv.URL)

	_, err := p.History(context.Background(), "London", daterange.MustParseDate("2024-05-01"))
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "top-secret") {
		t.Fatalf("error leaks api key: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Weather service error:") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWeatherAPIRequiresKey(t *testing.T) {
	p := NewWeatherAPIProvider(http.DefaultClient, "")
	if _, err := p.Forecast(context.Background(), "London", 5); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestWeatherAPIRejectsOutOfRangeCoordinates(t *testing.T) {
	body := strings.Replace(forecastBody, `"lat": 51.52`, `"lat": 151.52`, 1)
	srv, _ := newWeatherAPIServer(t, http.StatusOK, body)
	p := NewWeatherAPIProvider(srv.Client(), "secret").WithBaseURL(srv.URL)

	if _, err := p.Forecast(context.Background(), "London", 5); err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
}

func newOpenMeteoServer(t *testing.T, handlers map[string]string) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		body, ok := handlers[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":true,"reason":"unexpected path"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestOpenMeteoForecastGeocodes(t *testing.T) {
	srv, paths := newOpenMeteoServer(t, map[string]string{
		"/v1/search": `{"results":[{"name":"Berlin","latitude":52.52,"longitude":13.41,"country":"Germany","admin1":"Land Berlin","timezone":"Europe/Berlin"}]}`,
		"/v1/forecast": `{"timezone":"Europe/Berlin",
			"current":{"time":"2024-06-15T12:00","temperature_2m":22.3,"apparent_temperature":21.8,"relative_humidity_2m":55,
			           "surface_pressure":1009.5,"wind_speed_10m":14.4,"wind_direction_10m":270,"weather_code":2},
			"daily":{"time":["2024-06-15","2024-06-16"],"weather_code":[2,61],
			         "temperature_2m_max":[24.1,19.9],"temperature_2m_min":[14.0,12.2]}}`,
	})
	p := NewOpenMeteoProvider(srv.Client()).WithBaseURL(srv.URL)

	reading, err := p.Forecast(context.Background(), "Berlin", 2)
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if len(*paths) != 2 || (*paths)[0] != "/v1/search" {
		t.Fatalf("expected geocode then forecast, got %v", *paths)
	}
	if reading.Location.Name != "Berlin" || reading.Location.Region != "Land Berlin" {
		t.Fatalf("unexpected location %+v", reading.Location)
	}
	if reading.Location.LocalTime != "2024-06-15 12:00" {
		t.Fatalf("unexpected local time %q", reading.Location.LocalTime)
	}
	if reading.Current.Text != "Partly cloudy" || reading.Current.WindDegree != 270 {
		t.Fatalf("unexpected current %+v", reading.Current)
	}
	if len(reading.Days) != 2 || reading.Days[1].Text != "Rain" || reading.Days[1].MaxTempC != 19.9 {
		t.Fatalf("unexpected days %+v", reading.Days)
	}
}

func TestOpenMeteoCoordinatesSkipGeocoding(t *testing.T) {
	srv, paths := newOpenMeteoServer(t, map[string]string{
		"/v1/archive": `{"timezone":"Europe/Paris",
			"daily":{"time":["2024-05-01"],"weather_code":[3],"temperature_2m_max":[18.2],"temperature_2m_min":[9.1],
			         "temperature_2m_mean":[13.6],"wind_speed_10m_max":[21.6],"wind_direction_10m_dominant":[190]}}`,
	})
	p := NewOpenMeteoProvider(srv.Client()).WithBaseURL(srv.URL)

	date := daterange.MustParseDate("2024-05-01")
	reading, err := p.History(context.Background(), "48.8584,2.2945", date)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(*paths) != 1 || (*paths)[0] != "/v1/archive" {
		t.Fatalf("expected a single archive call, got %v", *paths)
	}
	if reading.Location.Lat != 48.8584 || reading.Location.Lon != 2.2945 {
		t.Fatalf("unexpected location %+v", reading.Location)
	}
	day := reading.Day
	if day.Date != date || day.AvgTempC != 13.6 || day.AvgWindDegree != 190 || day.Text != "Overcast" {
		t.Fatalf("unexpected day %+v", day)
	}
	if day.AvgPressureMb != defaultPressureMb {
		t.Fatalf("expected default pressure, got %v", day.AvgPressureMb)
	}
}

func TestOpenMeteoHistoryGeocodesOncePerPlace(t *testing.T) {
	srv, paths := newOpenMeteoServer(t, map[string]string{
		"/v1/search": `{"results":[{"name":"Rome","latitude":41.89,"longitude":12.48,"country":"Italy","timezone":"Europe/Rome"}]}`,
		"/v1/archive": `{"timezone":"Europe/Rome",
			"daily":{"time":["2024-05-01"],"weather_code":[0],"temperature_2m_max":[24],"temperature_2m_min":[13],
			         "temperature_2m_mean":[18.5],"wind_speed_10m_max":[12],"wind_direction_10m_dominant":[200],
			         "relative_humidity_2m_mean":[64],"pressure_msl_mean":[1018.4]}}`,
	})
	p := NewOpenMeteoProvider(srv.Client()).WithBaseURL(srv.URL)

	start := daterange.MustParseDate("2024-05-01")
	for i := 0; i < 3; i++ {
		reading, err := p.History(context.Background(), "Rome", start.AddDays(i))
		if err != nil {
			t.Fatalf("History returned error: %v", err)
		}
		if reading.Location.Name != "Rome" || reading.Location.Country != "Italy" {
			t.Fatalf("unexpected location %+v", reading.Location)
		}
		if reading.Day.AvgHumidity != 64 || reading.Day.AvgPressureMb != 1018.4 {
			t.Fatalf("expected humidity and pressure from the archive, got %+v", reading.Day)
		}
	}

	geocodes := 0
	for _, path := range *paths {
		if path == "/v1/search" {
			geocodes++
		}
	}
	if geocodes != 1 || len(*paths) != 4 {
		t.Fatalf("expected one geocode and three archive calls, got %v", *paths)
	}
}

func TestOpenMeteoArchiveGap(t *testing.T) {
	srv, _ := newOpenMeteoServer(t, map[string]string{
		"/v1/archive": `{"daily":{"time":["2024-06-14"],"temperature_2m_mean":[null]}}`,
	})
	p := NewOpenMeteoProvider(srv.Client()).WithBaseURL(srv.URL)

	_, err := p.History(context.Background(), "1,2", daterange.MustParseDate("2024-06-14"))
	if !weather.IsProviderKind(err, weather.ProviderUnknown) {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestOpenMeteoNoGeocodingMatch(t *testing.T) {
	srv, _ := newOpenMeteoServer(t, map[string]string{
		"/v1/search": `{"generationtime_ms":0.5}`,
	})
	p := NewOpenMeteoProvider(srv.Client()).WithBaseURL(srv.URL)

	_, err := p.Forecast(context.Background(), "Atlantis", 5)
	if !weather.IsProviderKind(err, weather.ProviderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCircuitBreakerIgnoresNotFound(t *testing.T) {
	cb := NewCircuitBreaker("test")
	for i := 0; i < 10; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, weather.NewProviderError("test", http.StatusNotFound, nil)
		})
	}
	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("expected breaker to stay closed, got %s", cb.State())
	}
}
