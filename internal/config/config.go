// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs to start. Every field has a
// working default; Open-Meteo needs no API key, so a bare environment
// boots against production endpoints.
type Config struct {
	Port               string
	GeocodingURL       string
	WeatherURL         string
	RequestTimeout     time.Duration
	MaxCitySuggestions int
}

// Load reads configuration from the environment, falling back to
// defaults for anything unset.
func Load() Config {
	return Config{
		Port:               getEnv("PORT", "8080"),
		GeocodingURL:       getEnv("OPENMETEO_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1"),
		WeatherURL:         getEnv("OPENMETEO_WEATHER_URL", "https://api.open-meteo.com/v1"),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_MS", 5000)) * time.Millisecond,
		MaxCitySuggestions: getEnvInt("MAX_CITY_SUGGESTIONS", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
