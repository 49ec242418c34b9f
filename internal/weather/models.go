package weather

import (
	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/landmarks"
)

// Location is where weather was requested for, as reported by the provider.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	State     string  `json:"state,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
	LocalTime string  `json:"localTime,omitempty"`
}

// CurrentConditions are the conditions at a single instant. Temperatures are
// whole degrees Celsius, wind speed is m/s with one decimal.
type CurrentConditions struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feelsLike"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
}

// TemperatureRange is a daily min/max pair.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ForecastDay summarises one calendar day.
type ForecastDay struct {
	Date        daterange.Date   `json:"date"`
	Temperature TemperatureRange `json:"temperature"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
}

// DayTemperature is the temperature detail of a historical day.
type DayTemperature struct {
	Current   float64 `json:"current"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	FeelsLike float64 `json:"feelsLike"`
}

// HistoricalDay is the full aggregate of one past day.
type HistoricalDay struct {
	Date          daterange.Date `json:"date"`
	Temperature   DayTemperature `json:"temperature"`
	Humidity      float64        `json:"humidity"`
	Pressure      float64        `json:"pressure"`
	WindSpeed     float64        `json:"windSpeed"`
	WindDirection int            `json:"windDirection"`
	Description   string         `json:"description"`
	Icon          string         `json:"icon"`
}

// Result is the unified answer to a weather lookup. Forecast is ordered
// chronologically; DailyData is only populated when IsHistorical is true.
type Result struct {
	Location     Location            `json:"location"`
	Current      CurrentConditions   `json:"current"`
	Forecast     []ForecastDay       `json:"forecast"`
	IsHistorical bool                `json:"isHistorical"`
	DailyData    []HistoricalDay     `json:"dailyData,omitempty"`
	Landmark     *landmarks.Landmark `json:"landmark,omitempty"`
}
