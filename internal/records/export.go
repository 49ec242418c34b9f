package records

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
)

// ParseFormat accepts json, csv or xml in any case; empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatXML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXML:
		return "application/xml"
	default:
		return "application/json"
	}
}

// FileName is the attachment name for an export taken at now.
func (f Format) FileName(now time.Time) string {
	return fmt.Sprintf("weather-history-%s.%s", now.UTC().Format("2006-01-02"), f)
}

// Export writes recs to w in the given format.
func Export(w io.Writer, f Format, recs []Record, now time.Time) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, recs)
	case FormatXML:
		return writeXML(w, recs, now)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if recs == nil {
			recs = []Record{}
		}
		return enc.Encode(recs)
	}
}

var csvHeader = []string{
	"ID",
	"Location",
	"Latitude",
	"Longitude",
	"Start Date",
	"End Date",
	"Current Temperature (°C)",
	"Min Temperature (°C)",
	"Max Temperature (°C)",
	"Feels Like (°C)",
	"Humidity (%)",
	"Pressure (mb)",
	"Wind Speed (m/s)",
	"Wind Direction (°)",
	"Description",
	"Is Historical",
	"Created At",
	"Updated At",
}

func writeCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range recs {
		td := r.TemperatureData
		row := []string{
			r.ID,
			r.Location,
			formatFloat(r.Latitude),
			formatFloat(r.Longitude),
			r.DateRange.Start.String(),
			r.DateRange.End.String(),
			formatFloat(td.Current),
			formatFloat(td.Min),
			formatFloat(td.Max),
			formatFloat(td.FeelsLike),
			formatFloat(td.Humidity),
			formatFloat(td.Pressure),
			formatFloat(td.WindSpeed),
			strconv.Itoa(td.WindDirection),
			td.Description,
			strconv.FormatBool(r.IsHistorical),
			r.CreatedAt.UTC().Format("2006-01-02"),
			r.UpdatedAt.UTC().Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type xmlExport struct {
	XMLName xml.Name    `xml:"weather-records"`
	Info    xmlInfo     `xml:"export-info"`
	Records []xmlRecord `xml:"record"`
}

type xmlInfo struct {
	ExportDate   string `xml:"export-date"`
	TotalRecords int    `xml:"total-records"`
}

type xmlRecord struct {
	ID       string `xml:"id,attr"`
	Location struct {
		Name      string  `xml:"name"`
		Latitude  float64 `xml:"latitude"`
		Longitude float64 `xml:"longitude"`
	} `xml:"location"`
	DateRange struct {
		Start string `xml:"start"`
		End   string `xml:"end"`
	} `xml:"date-range"`
	Temperature struct {
		Current       float64 `xml:"current"`
		Min           float64 `xml:"min"`
		Max           float64 `xml:"max"`
		FeelsLike     float64 `xml:"feels-like"`
		Humidity      float64 `xml:"humidity"`
		Pressure      float64 `xml:"pressure"`
		WindSpeed     float64 `xml:"wind-speed"`
		WindDirection int     `xml:"wind-direction"`
		Description   string  `xml:"description"`
	} `xml:"temperature-data"`
	IsHistorical bool   `xml:"is-historical"`
	CreatedAt    string `xml:"created-at"`
	UpdatedAt    string `xml:"updated-at"`
}

func writeXML(w io.Writer, recs []Record, now time.Time) error {
	doc := xmlExport{
		Info: xmlInfo{
			ExportDate:   now.UTC().Format(time.RFC3339),
			TotalRecords: len(recs),
		},
	}
	for _, r := range recs {
		var x xmlRecord
		x.ID = r.ID
		x.Location.Name = r.Location
		x.Location.Latitude = r.Latitude
		x.Location.Longitude = r.Longitude
		x.DateRange.Start = r.DateRange.Start.String()
		x.DateRange.End = r.DateRange.End.String()
		x.Temperature.Current = r.TemperatureData.Current
		x.Temperature.Min = r.TemperatureData.Min
		x.Temperature.Max = r.TemperatureData.Max
		x.Temperature.FeelsLike = r.TemperatureData.FeelsLike
		x.Temperature.Humidity = r.TemperatureData.Humidity
		x.Temperature.Pressure = r.TemperatureData.Pressure
		x.Temperature.WindSpeed = r.TemperatureData.WindSpeed
		x.Temperature.WindDirection = r.TemperatureData.WindDirection
		x.Temperature.Description = r.TemperatureData.Description
		x.IsHistorical = r.IsHistorical
		x.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
		x.UpdatedAt = r.UpdatedAt.UTC().Format(time.RFC3339)
		doc.Records = append(doc.Records, x)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Flush()
}
