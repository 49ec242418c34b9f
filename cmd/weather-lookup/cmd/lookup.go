package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/landmarks"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var (
	lookupStart string
	lookupEnd   string
	lookupJSON  bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <location>",
	Short: "Fetch the forecast or a past date range for a location",
	Example: `  weather-lookup lookup "Eiffel Tower"
  weather-lookup lookup 48.8584,2.2945 --start 2024-03-01 --end 2024-03-05`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupStart, "start", "", "range start date (YYYY-MM-DD)")
	lookupCmd.Flags().StringVar(&lookupEnd, "end", "", "range end date (YYYY-MM-DD)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the raw JSON result")
	lookupCmd.MarkFlagsRequiredTogether("start", "end")
}

func runLookup(cmd *cobra.Command, args []string) error {
	rng, err := flagRange(lookupStart, lookupEnd)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	svc := newWeatherService(cfg, landmarks.NewCatalog())

	res, err := svc.GetWeather(cmd.Context(), strings.Join(args, " "), rng)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lookupJSON {
		return writeJSON(out, res)
	}
	printSummary(out, res)
	return nil
}

func flagRange(start, end string) (*daterange.Range, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	s, err := daterange.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	e, err := daterange.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("--end: %w", err)
	}
	return &daterange.Range{Start: s, End: e}, nil
}

var titleCase = cases.Title(language.English)

// printSummary renders a result as a short human-readable report.
func printSummary(w io.Writer, res weather.Result) {
	loc := res.Location
	place := loc.Name
	if loc.State != "" {
		place += ", " + loc.State
	}
	if loc.Country != "" {
		place += ", " + loc.Country
	}
	fmt.Fprintf(w, "%s (%.4f, %.4f)\n", place, loc.Latitude, loc.Longitude)
	if res.Landmark != nil {
		fmt.Fprintf(w, "Landmark: %s, %s\n", res.Landmark.Name, res.Landmark.City)
	}

	if res.IsHistorical {
		fmt.Fprintf(w, "Historical data, %d day(s)\n", len(res.DailyData))
		for _, d := range res.DailyData {
			fmt.Fprintf(w, "  %s  %5.1f°C  min %5.1f  max %5.1f  %s\n",
				d.Date, d.Temperature.Current, d.Temperature.Min, d.Temperature.Max,
				titleCase.String(d.Description))
		}
		return
	}

	cur := res.Current
	fmt.Fprintf(w, "Now: %.1f°C (feels like %.1f°C), %s\n", cur.Temperature, cur.FeelsLike, titleCase.String(cur.Description))
	fmt.Fprintf(w, "Humidity %.0f%%  Pressure %.0f hPa  Wind %.1f m/s at %d°\n",
		cur.Humidity, cur.Pressure, cur.WindSpeed, cur.WindDirection)
	for _, d := range res.Forecast {
		fmt.Fprintf(w, "  %s  %5.1f / %5.1f°C  %s\n",
			d.Date, d.Temperature.Min, d.Temperature.Max, titleCase.String(d.Description))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
