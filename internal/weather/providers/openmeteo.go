package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/location"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	openMeteoGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	openMeteoForecastURL = "https://api.open-meteo.com/v1/forecast"
	openMeteoArchiveURL  = "https://archive-api.open-meteo.com/v1/archive"

	openMeteoTimeLayout = "2006-01-02T15:04"
)

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// It needs no API key; free-text queries are geocoded through Open-Meteo's own
// geocoding endpoint.
type OpenMeteoProvider struct {
	name        string
	geocodeURL  string
	forecastURL string
	archiveURL  string
	httpCfg     HTTPClientConfig

	// Historical lookups ask for the same place once per day, so the last
	// geocoding answer is kept.
	placeMu   sync.Mutex
	lastQuery string
	lastPlace weather.ProviderLocation
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:        "openmeteo",
		geocodeURL:  openMeteoGeocodeURL,
		forecastURL: openMeteoForecastURL,
		archiveURL:  openMeteoArchiveURL,
		httpCfg:     HTTPClientConfig{Client: client},
	}
}

// WithBaseURL serves all three Open-Meteo endpoints from one host.
func (p *OpenMeteoProvider) WithBaseURL(baseURL string) *OpenMeteoProvider {
	p.geocodeURL = baseURL + "/v1/search"
	p.forecastURL = baseURL + "/v1/forecast"
	p.archiveURL = baseURL + "/v1/archive"
	return p
}

// WithCircuitBreaker wraps every call in a circuit breaker.
func (p *OpenMeteoProvider) WithCircuitBreaker() *OpenMeteoProvider {
	p.httpCfg.Breaker = NewCircuitBreaker(p.name)
	return p
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoForecastResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		SurfacePressure     float64 `json:"surface_pressure"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WindDirection       float64 `json:"wind_direction_10m"`
		WeatherCode         int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time           []string   `json:"time"`
		WeatherCode    []*int     `json:"weather_code"`
		TemperatureMax []*float64 `json:"temperature_2m_max"`
		TemperatureMin []*float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

type openMeteoArchiveResponse struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time              []string   `json:"time"`
		WeatherCode       []*int     `json:"weather_code"`
		TemperatureMax    []*float64 `json:"temperature_2m_max"`
		TemperatureMin    []*float64 `json:"temperature_2m_min"`
		TemperatureMean   []*float64 `json:"temperature_2m_mean"`
		WindSpeedMax      []*float64 `json:"wind_speed_10m_max"`
		WindDirectionMain []*float64 `json:"wind_direction_10m_dominant"`
		HumidityMean      []*float64 `json:"relative_humidity_2m_mean"`
		PressureMean      []*float64 `json:"pressure_msl_mean"`
	} `json:"daily"`
}

func (p *OpenMeteoProvider) Forecast(ctx context.Context, query string, days int) (weather.ForecastReading, error) {
	loc, err := p.locate(ctx, query)
	if err != nil {
		return weather.ForecastReading{}, err
	}

	values := coordinateValues(loc)
	values.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,surface_pressure,wind_speed_10m,wind_direction_10m,weather_code")
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	values.Set("timezone", "auto")
	values.Set("forecast_days", strconv.Itoa(days))

	var payload openMeteoForecastResponse
	if err := getJSON(ctx, p.httpCfg, p.name, "forecast", p.forecastURL+"?"+values.Encode(), &payload); err != nil {
		return weather.ForecastReading{}, err
	}

	loc.TimezoneID = payload.Timezone
	if ts, err := time.Parse(openMeteoTimeLayout, payload.Current.Time); err == nil {
		loc.LocalTime = ts.Format("2006-01-02 15:04")
	}

	reading := weather.ForecastReading{
		Location: loc,
		Current: weather.ProviderCurrent{
			TempC:      payload.Current.Temperature,
			FeelsLikeC: payload.Current.ApparentTemperature,
			Humidity:   payload.Current.RelativeHumidity,
			PressureMb: payload.Current.SurfacePressure,
			WindKph:    payload.Current.WindSpeed,
			WindDegree: int(payload.Current.WindDirection),
			Text:       describeWeatherCode(payload.Current.WeatherCode),
			Icon:       weatherCodeIcon(payload.Current.WeatherCode),
		},
	}

	d := payload.Daily
	for i, raw := range d.Time {
		date, err := daterange.ParseDate(raw)
		if err != nil {
			return weather.ForecastReading{}, weather.NewProviderError(p.name, 0, fmt.Errorf("response has malformed date: %w", err))
		}
		code := intAt(d.WeatherCode, i)
		reading.Days = append(reading.Days, weather.ProviderDay{
			Date:          date,
			MinTempC:      floatAt(d.TemperatureMin, i),
			MaxTempC:      floatAt(d.TemperatureMax, i),
			AvgPressureMb: defaultPressureMb,
			Text:          describeWeatherCode(code),
			Icon:          weatherCodeIcon(code),
		})
	}

	return reading, nil
}

func (p *OpenMeteoProvider) History(ctx context.Context, query string, date daterange.Date) (weather.HistoryReading, error) {
	loc, err := p.locate(ctx, query)
	if err != nil {
		return weather.HistoryReading{}, err
	}

	values := coordinateValues(loc)
	values.Set("start_date", date.String())
	values.Set("end_date", date.String())
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,temperature_2m_mean,wind_speed_10m_max,wind_direction_10m_dominant,relative_humidity_2m_mean,pressure_msl_mean")
	values.Set("timezone", "auto")

	var payload openMeteoArchiveResponse
	if err := getJSON(ctx, p.httpCfg, p.name, "history", p.archiveURL+"?"+values.Encode(), &payload); err != nil {
		return weather.HistoryReading{}, err
	}

	d := payload.Daily
	// The archive lags a few days behind; such days come back as nulls.
	if len(d.Time) == 0 || len(d.TemperatureMean) == 0 || d.TemperatureMean[0] == nil {
		return weather.HistoryReading{}, weather.NewProviderError(p.name, 0, fmt.Errorf("archive has no data for %s", date))
	}

	loc.TimezoneID = payload.Timezone
	code := intAt(d.WeatherCode, 0)
	pressure := defaultPressureMb
	if len(d.PressureMean) > 0 && d.PressureMean[0] != nil {
		pressure = *d.PressureMean[0]
	}
	day := weather.ProviderDay{
		Date:          date,
		MinTempC:      floatAt(d.TemperatureMin, 0),
		MaxTempC:      floatAt(d.TemperatureMax, 0),
		AvgTempC:      *d.TemperatureMean[0],
		AvgHumidity:   floatAt(d.HumidityMean, 0),
		AvgPressureMb: pressure,
		MaxWindKph:    floatAt(d.WindSpeedMax, 0),
		AvgWindDegree: int(floatAt(d.WindDirectionMain, 0)),
		Text:          describeWeatherCode(code),
		Icon:          weatherCodeIcon(code),
	}

	return weather.HistoryReading{Location: loc, Day: day}, nil
}

// locate turns a query into coordinates. "lat,lon" pairs are used as-is,
// anything else goes through the geocoding endpoint.
func (p *OpenMeteoProvider) locate(ctx context.Context, query string) (weather.ProviderLocation, error) {
	if class := location.Classify(query); class.Kind == location.KindCoordinates {
		parts := strings.SplitN(class.Normalized, ",", 2)
		lat, _ := strconv.ParseFloat(parts[0], 64)
		lon, _ := strconv.ParseFloat(parts[1], 64)
		return weather.ProviderLocation{Name: class.Normalized, Lat: lat, Lon: lon}, nil
	}

	p.placeMu.Lock()
	if p.lastQuery == query {
		place := p.lastPlace
		p.placeMu.Unlock()
		return place, nil
	}
	p.placeMu.Unlock()

	values := url.Values{}
	values.Set("name", query)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
			Admin1    string  `json:"admin1"`
			Timezone  string  `json:"timezone"`
		} `json:"results"`
	}
	if err := getJSON(ctx, p.httpCfg, p.name, "geocode", p.geocodeURL+"?"+values.Encode(), &payload); err != nil {
		return weather.ProviderLocation{}, err
	}
	if len(payload.Results) == 0 {
		return weather.ProviderLocation{}, weather.NewProviderError(p.name, http.StatusNotFound, errors.New("no geocoding match for "+query))
	}

	r := payload.Results[0]
	if !location.ValidCoordinates(r.Latitude, r.Longitude) {
		return weather.ProviderLocation{}, weather.NewProviderError(p.name, 0, fmt.Errorf("response has out-of-range coordinates %v,%v", r.Latitude, r.Longitude))
	}
	place := weather.ProviderLocation{
		Name:       r.Name,
		Region:     r.Admin1,
		Country:    r.Country,
		Lat:        r.Latitude,
		Lon:        r.Longitude,
		TimezoneID: r.Timezone,
	}

	p.placeMu.Lock()
	p.lastQuery, p.lastPlace = query, place
	p.placeMu.Unlock()
	return place, nil
}

func coordinateValues(loc weather.ProviderLocation) url.Values {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	return values
}

func floatAt(s []*float64, i int) float64 {
	if i < len(s) && s[i] != nil {
		return *s[i]
	}
	return 0
}

func intAt(s []*int, i int) int {
	if i < len(s) && s[i] != nil {
		return *s[i]
	}
	return -1
}

// describeWeatherCode maps a WMO weather interpretation code to a short
// description.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code == 1:
		return "Mainly clear"
	case code == 2:
		return "Partly cloudy"
	case code == 3:
		return "Overcast"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case code >= 95 && code <= 99:
		return "Thunderstorm"
	default:
		return defaultDescription
	}
}

// weatherCodeIcon returns an icon token; Open-Meteo ships no icon URLs.
func weatherCodeIcon(code int) string {
	if code < 0 {
		return defaultIcon
	}
	return "wmo-" + strconv.Itoa(code)
}

var _ weather.Provider = (*OpenMeteoProvider)(nil)
