package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultUserAgent    = "duskgold/1.0"
	DefaultLogLevel     = "warn"

	// RequestTimeout applies to every outbound HTTP call.
	RequestTimeout = 15 * time.Second
)

// Config holds runtime settings for the remote services and diagnostics
type Config struct {
	GeocodingURL string
	ForecastURL  string
	UserAgent    string
	LogLevel     string
	Timeout      time.Duration
}

// Load reads an optional .env file and then the environment
func Load() Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	return Config{
		GeocodingURL: getEnvOrDefault("DUSKGOLD_GEOCODING_URL", DefaultGeocodingURL),
		ForecastURL:  getEnvOrDefault("DUSKGOLD_FORECAST_URL", DefaultForecastURL),
		UserAgent:    getEnvOrDefault("DUSKGOLD_USER_AGENT", DefaultUserAgent),
		LogLevel:     getEnvOrDefault("DUSKGOLD_LOG_LEVEL", DefaultLogLevel),
		Timeout:      RequestTimeout,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
