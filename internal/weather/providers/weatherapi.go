package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/location"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	weatherAPIBaseURL = "https://api.weatherapi.com/v1"

	// Defaults for optional fields of history aggregates.
	defaultPressureMb  = 1013.25
	defaultDescription = "Unknown"
	defaultIcon        = "//cdn.weatherapi.com/weather/64x64/day/113.png"
)

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: weatherAPIBaseURL,
		httpCfg: HTTPClientConfig{Client: client},
	}
}

// WithBaseURL points the provider at a different API root.
func (p *WeatherAPIProvider) WithBaseURL(baseURL string) *WeatherAPIProvider {
	p.baseURL = baseURL
	return p
}

// WithCircuitBreaker wraps every call in a circuit breaker.
func (p *WeatherAPIProvider) WithCircuitBreaker() *WeatherAPIProvider {
	p.httpCfg.Breaker = NewCircuitBreaker(p.name)
	return p
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type weatherAPILocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tz_id"`
	Localtime string  `json:"localtime"`
}

type weatherAPICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// weatherAPIDay is the "day" block of a forecast or history entry. Fields the
// history endpoint may omit are pointers.
type weatherAPIDay struct {
	MaxTempC      float64              `json:"maxtemp_c"`
	MinTempC      float64              `json:"mintemp_c"`
	AvgTempC      float64              `json:"avgtemp_c"`
	MaxWindKph    float64              `json:"maxwind_kph"`
	AvgHumidity   float64              `json:"avghumidity"`
	AvgPressureMb *float64             `json:"avgpressure_mb"`
	AvgWindDegree *int                 `json:"avgwind_degree"`
	Condition     *weatherAPICondition `json:"condition"`
}

type weatherAPIForecastDay struct {
	Date string        `json:"date"`
	Day  weatherAPIDay `json:"day"`
}

type weatherAPIForecastResponse struct {
	Location weatherAPILocation `json:"location"`
	Current  struct {
		TempC      float64             `json:"temp_c"`
		FeelslikeC float64             `json:"feelslike_c"`
		Humidity   float64             `json:"humidity"`
		PressureMb float64             `json:"pressure_mb"`
		WindKph    float64             `json:"wind_kph"`
		WindDegree int                 `json:"wind_degree"`
		Condition  weatherAPICondition `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []weatherAPIForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type weatherAPIHistoryResponse struct {
	Location weatherAPILocation `json:"location"`
	Forecast struct {
		ForecastDay []weatherAPIForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// Forecast calls forecast.json, which carries current conditions and the
// upcoming days in one response.
func (p *WeatherAPIProvider) Forecast(ctx context.Context, query string, days int) (weather.ForecastReading, error) {
	if p.apiKey == "" {
		return weather.ForecastReading{}, weather.NewProviderError(p.name, 0, fmt.Errorf("weatherapi api key is not configured"))
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", query)
	values.Set("days", strconv.Itoa(days))
	values.Set("aqi", "no")
	values.Set("alerts", "no")

	var payload weatherAPIForecastResponse
	if err := getJSON(ctx, p.httpCfg, p.name, "forecast", p.baseURL+"/forecast.json?"+values.Encode(), &payload); err != nil {
		return weather.ForecastReading{}, err
	}

	loc, err := p.toLocation(payload.Location)
	if err != nil {
		return weather.ForecastReading{}, err
	}

	reading := weather.ForecastReading{
		Location: loc,
		Current: weather.ProviderCurrent{
			TempC:      payload.Current.TempC,
			FeelsLikeC: payload.Current.FeelslikeC,
			Humidity:   payload.Current.Humidity,
			PressureMb: payload.Current.PressureMb,
			WindKph:    payload.Current.WindKph,
			WindDegree: payload.Current.WindDegree,
			Text:       payload.Current.Condition.Text,
			Icon:       payload.Current.Condition.Icon,
		},
	}

	for _, fd := range payload.Forecast.ForecastDay {
		day, err := p.toDay(fd)
		if err != nil {
			return weather.ForecastReading{}, err
		}
		reading.Days = append(reading.Days, day)
	}

	return reading, nil
}

// History calls history.json for a single calendar day.
func (p *WeatherAPIProvider) History(ctx context.Context, query string, date daterange.Date) (weather.HistoryReading, error) {
	if p.apiKey == "" {
		return weather.HistoryReading{}, weather.NewProviderError(p.name, 0, fmt.Errorf("weatherapi api key is not configured"))
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", query)
	values.Set("dt", date.String())

	var payload weatherAPIHistoryResponse
	if err := getJSON(ctx, p.httpCfg, p.name, "history", p.baseURL+"/history.json?"+values.Encode(), &payload); err != nil {
		return weather.HistoryReading{}, err
	}

	if len(payload.Forecast.ForecastDay) == 0 {
		return weather.HistoryReading{}, weather.NewProviderError(p.name, 0, fmt.Errorf("history for %s contained no days", date))
	}

	loc, err := p.toLocation(payload.Location)
	if err != nil {
		return weather.HistoryReading{}, err
	}

	day, err := p.toDay(payload.Forecast.ForecastDay[0])
	if err != nil {
		return weather.HistoryReading{}, err
	}
	// The request date is authoritative for the day we asked about.
	day.Date = date

	return weather.HistoryReading{Location: loc, Day: day}, nil
}

func (p *WeatherAPIProvider) toLocation(l weatherAPILocation) (weather.ProviderLocation, error) {
	if !location.ValidCoordinates(l.Lat, l.Lon) {
		return weather.ProviderLocation{}, weather.NewProviderError(p.name, 0, fmt.Errorf("response has out-of-range coordinates %v,%v", l.Lat, l.Lon))
	}
	return weather.ProviderLocation{
		Name:       l.Name,
		Region:     l.Region,
		Country:    l.Country,
		Lat:        l.Lat,
		Lon:        l.Lon,
		TimezoneID: l.TzID,
		LocalTime:  l.Localtime,
	}, nil
}

func (p *WeatherAPIProvider) toDay(fd weatherAPIForecastDay) (weather.ProviderDay, error) {
	date, err := daterange.ParseDate(fd.Date)
	if err != nil {
		return weather.ProviderDay{}, weather.NewProviderError(p.name, 0, fmt.Errorf("response has malformed date: %w", err))
	}

	day := weather.ProviderDay{
		Date:          date,
		MinTempC:      fd.Day.MinTempC,
		MaxTempC:      fd.Day.MaxTempC,
		AvgTempC:      fd.Day.AvgTempC,
		AvgHumidity:   fd.Day.AvgHumidity,
		AvgPressureMb: defaultPressureMb,
		MaxWindKph:    fd.Day.MaxWindKph,
		Text:          defaultDescription,
		Icon:          defaultIcon,
	}
	if fd.Day.AvgPressureMb != nil {
		day.AvgPressureMb = *fd.Day.AvgPressureMb
	}
	if fd.Day.AvgWindDegree != nil {
		day.AvgWindDegree = *fd.Day.AvgWindDegree
	}
	if c := fd.Day.Condition; c != nil {
		if c.Text != "" {
			day.Text = c.Text
		}
		if c.Icon != "" {
			day.Icon = c.Icon
		}
	}
	return day, nil
}

var _ weather.Provider = (*WeatherAPIProvider)(nil)
