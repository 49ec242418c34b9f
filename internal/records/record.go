package records

import (
	"time"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// TemperatureData is the summary stored with a record. Min and Max span the
// whole forecast; the other fields are the current conditions at fetch time.
type TemperatureData struct {
	Current       float64 `json:"current"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	FeelsLike     float64 `json:"feelsLike"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
}

// Record is a saved weather lookup for a location and date range.
type Record struct {
	ID              string                  `json:"id"`
	Location        string                  `json:"location"`
	Latitude        float64                 `json:"latitude"`
	Longitude       float64                 `json:"longitude"`
	DateRange       daterange.Range         `json:"dateRange"`
	TemperatureData TemperatureData         `json:"temperatureData"`
	Forecast        []weather.ForecastDay   `json:"forecast"`
	DailyData       []weather.HistoricalDay `json:"dailyData,omitempty"`
	IsHistorical    bool                    `json:"isHistorical"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// applyLocation copies the provider's resolved place onto the record.
func (r *Record) applyLocation(res weather.Result) {
	r.Location = res.Location.Name
	r.Latitude = res.Location.Latitude
	r.Longitude = res.Location.Longitude
}

// applyWeather replaces the record's weather payload with res.
func (r *Record) applyWeather(res weather.Result) {
	r.TemperatureData = summarize(res)
	r.Forecast = res.Forecast
	r.IsHistorical = res.IsHistorical
	r.DailyData = nil
	if res.IsHistorical {
		r.DailyData = res.DailyData
	}
}

func summarize(res weather.Result) TemperatureData {
	td := TemperatureData{
		Current:       res.Current.Temperature,
		FeelsLike:     res.Current.FeelsLike,
		Humidity:      res.Current.Humidity,
		Pressure:      res.Current.Pressure,
		WindSpeed:     res.Current.WindSpeed,
		WindDirection: res.Current.WindDirection,
		Description:   res.Current.Description,
		Icon:          res.Current.Icon,
	}
	for i, day := range res.Forecast {
		if i == 0 || day.Temperature.Min < td.Min {
			td.Min = day.Temperature.Min
		}
		if i == 0 || day.Temperature.Max > td.Max {
			td.Max = day.Temperature.Max
		}
	}
	return td
}
