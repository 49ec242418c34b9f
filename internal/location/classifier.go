package location

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind describes what a location string denotes.
type Kind string

const (
	KindInvalid     Kind = "invalid"
	KindCoordinates Kind = "coordinates"
	KindPostalCode  Kind = "postal_code"
	KindPlaceName   Kind = "place_name"
)

// Description returns a human readable label for the kind.
func (k Kind) Description() string {
	switch k {
	case KindCoordinates:
		return "Coordinates (latitude, longitude)"
	case KindPostalCode:
		return "ZIP/Postal Code"
	case KindPlaceName:
		return "City or Location"
	default:
		return "Unknown format"
	}
}

const (
	ErrEmpty     = "Location cannot be empty"
	ErrTooShort  = "Location must be at least 2 characters long"
	ErrLatitude  = "Latitude must be between -90 and 90"
	ErrLongitude = "Longitude must be between -180 and 180"
)

var (
	coordinatesRegex = regexp.MustCompile(`^-?\d+(\.\d+)?,\s*-?\d+(\.\d+)?$`)
	usZipRegex       = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	caPostalRegex    = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] \d[A-Za-z]\d$`)
	ukPostalRegex    = regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? \d[A-Za-z]{2}$`)
)

// Result is the outcome of classifying a free-form location string.
type Result struct {
	Valid      bool   `json:"isValid"`
	Kind       Kind   `json:"kind"`
	Normalized string `json:"normalized"`
	Error      string `json:"error,omitempty"`
}

// Classify decides whether input is a coordinate pair, a postal code or a
// place name and normalizes it. It does no I/O.
func Classify(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return invalid("", ErrEmpty)
	}

	if coordinatesRegex.MatchString(trimmed) {
		lat, lon, err := splitCoordinates(trimmed)
		if err != nil {
			return invalid(trimmed, err.Error())
		}
		if lat < -90 || lat > 90 {
			return invalid(trimmed, ErrLatitude)
		}
		if lon < -180 || lon > 180 {
			return invalid(trimmed, ErrLongitude)
		}
		return Result{
			Valid:      true,
			Kind:       KindCoordinates,
			Normalized: FormatCoordinates(lat, lon),
		}
	}

	switch {
	case usZipRegex.MatchString(trimmed):
		return Result{Valid: true, Kind: KindPostalCode, Normalized: trimmed}
	case caPostalRegex.MatchString(trimmed), ukPostalRegex.MatchString(trimmed):
		return Result{Valid: true, Kind: KindPostalCode, Normalized: strings.ToUpper(trimmed)}
	}

	if len([]rune(trimmed)) >= 2 {
		return Result{Valid: true, Kind: KindPlaceName, Normalized: trimmed}
	}

	return invalid(trimmed, ErrTooShort)
}

// FormatCoordinates renders a pair the way the weather provider accepts it,
// using the shortest decimal form of each number.
func FormatCoordinates(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}

// ValidCoordinates reports whether lat/lon are inside the geographic range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func splitCoordinates(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func invalid(normalized, msg string) Result {
	return Result{
		Valid:      false,
		Kind:       KindInvalid,
		Normalized: normalized,
		Error:      msg,
	}
}
