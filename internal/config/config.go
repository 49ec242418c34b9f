package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderWeatherAPI = "weatherapi"
	ProviderOpenMeteo  = "openmeteo"
)

type AppConfig struct {
	// Provider selects the upstream weather backend.
	Provider          string `validate:"oneof=weatherapi openmeteo"`
	WeatherAPIKey     string `validate:"required_if=Provider weatherapi"`
	WeatherAPIBaseURL string `validate:"omitempty,url"`

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout    time.Duration `validate:"gt=0"`
	CircuitBreaker bool

	// RefreshInterval controls how often live records are refetched
	// (0 disables the scheduler).
	RefreshInterval time.Duration `validate:"gte=0"`
	RefreshTimeout  time.Duration `validate:"gt=0"`

	// In-memory store retention (0 = unlimited). Ignored when MongoURI is set.
	StoreMaxRecords int `validate:"gte=0"`

	MongoURI        string `validate:"omitempty,startswith=mongodb"`
	MongoDatabase   string `validate:"required_with=MongoURI"`
	MongoCollection string `validate:"required_with=MongoURI"`

	Port string `validate:"required,numeric"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Provider = strings.ToLower(getenvDefault("WEATHER_PROVIDER", ProviderWeatherAPI))
	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	cfg.WeatherAPIBaseURL = os.Getenv("WEATHER_API_BASE_URL")
	cfg.CircuitBreaker = getenvBool("PROVIDER_CIRCUIT_BREAKER", false)

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	// Scheduler interval: default 30 minutes.
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "30m"); err != nil {
		return nil, err
	}
	if cfg.RefreshTimeout, err = getenvDuration("REFRESH_TIMEOUT", "2m"); err != nil {
		return nil, err
	}

	cfg.StoreMaxRecords = getenvInt("STORE_MAX_RECORDS", 1000)

	cfg.MongoURI = os.Getenv("MONGODB_URI")
	cfg.MongoDatabase = getenvDefault("MONGODB_DATABASE", "weather")
	cfg.MongoCollection = getenvDefault("MONGODB_COLLECTION", "weatherrecords")

	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
