package weather

import "math"

// KphToMS converts km/h to m/s rounded to one decimal place.
func KphToMS(kph float64) float64 {
	return math.Round(kph/3.6*10) / 10
}

// RoundTemp rounds a temperature to the nearest whole degree.
func RoundTemp(c float64) float64 {
	return math.Round(c)
}

func toLocation(p ProviderLocation) Location {
	return Location{
		Name:      p.Name,
		Latitude:  p.Lat,
		Longitude: p.Lon,
		Country:   p.Country,
		State:     p.Region,
		Timezone:  p.TimezoneID,
		LocalTime: p.LocalTime,
	}
}

func toForecastDay(d ProviderDay) ForecastDay {
	return ForecastDay{
		Date: d.Date,
		Temperature: TemperatureRange{
			Min: RoundTemp(d.MinTempC),
			Max: RoundTemp(d.MaxTempC),
		},
		Description: d.Text,
		Icon:        d.Icon,
	}
}

// toHistoricalDay uses the day's average temperature for both the current and
// the feels-like reading; history aggregates carry no separate feels-like.
func toHistoricalDay(d ProviderDay) HistoricalDay {
	avg := RoundTemp(d.AvgTempC)
	return HistoricalDay{
		Date: d.Date,
		Temperature: DayTemperature{
			Current:   avg,
			Min:       RoundTemp(d.MinTempC),
			Max:       RoundTemp(d.MaxTempC),
			FeelsLike: avg,
		},
		Humidity:      d.AvgHumidity,
		Pressure:      d.AvgPressureMb,
		WindSpeed:     KphToMS(d.MaxWindKph),
		WindDirection: d.AvgWindDegree,
		Description:   d.Text,
		Icon:          d.Icon,
	}
}

// assembleLive turns a forecast reading into a live Result, keeping at most
// maxDays forecast entries.
func assembleLive(r ForecastReading, maxDays int) Result {
	days := r.Days
	if len(days) > maxDays {
		days = days[:maxDays]
	}

	forecast := make([]ForecastDay, 0, len(days))
	for _, d := range days {
		forecast = append(forecast, toForecastDay(d))
	}

	return Result{
		Location: toLocation(r.Location),
		Current: CurrentConditions{
			Temperature:   RoundTemp(r.Current.TempC),
			FeelsLike:     RoundTemp(r.Current.FeelsLikeC),
			Humidity:      r.Current.Humidity,
			Pressure:      r.Current.PressureMb,
			WindSpeed:     KphToMS(r.Current.WindKph),
			WindDirection: r.Current.WindDegree,
			Description:   r.Current.Text,
			Icon:          r.Current.Icon,
		},
		Forecast:     forecast,
		IsHistorical: false,
	}
}

// assembleHistorical combines the successful per-day readings (already in
// chronological order). The first day stands in for current conditions.
// readings must not be empty.
func assembleHistorical(readings []HistoryReading) Result {
	daily := make([]HistoricalDay, 0, len(readings))
	forecast := make([]ForecastDay, 0, len(readings))
	for _, r := range readings {
		daily = append(daily, toHistoricalDay(r.Day))
		forecast = append(forecast, toForecastDay(r.Day))
	}

	first := daily[0]
	return Result{
		Location: toLocation(readings[0].Location),
		Current: CurrentConditions{
			Temperature:   first.Temperature.Current,
			FeelsLike:     first.Temperature.FeelsLike,
			Humidity:      first.Humidity,
			Pressure:      first.Pressure,
			WindSpeed:     first.WindSpeed,
			WindDirection: first.WindDirection,
			Description:   first.Description,
			Icon:          first.Icon,
		},
		Forecast:     forecast,
		IsHistorical: true,
		DailyData:    daily,
	}
}
