package config

import (
	"os"
	"strconv"
	"time"
)

// Get returns the value of an environment variable, or fallback when it
// is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt parses an integer environment variable, falling back on
// missing or malformed values.
func GetInt(key string, fallback int) int {
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

// GetDuration parses a duration environment variable (e.g. "10m"),
// falling back on missing or malformed values.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// Provider holds the flight-data vendor settings. It is passed into the
// adapter at construction; nothing reads vendor credentials from
// ambient process state after startup.
type Provider struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// ProviderFromEnv reads vendor settings from the environment. An empty
// APIKey is valid and means status lookups are disabled.
func ProviderFromEnv() Provider {
	return Provider{
		APIKey:  os.Getenv("FLIGHT_API_KEY"),
		BaseURL: Get("FLIGHT_API_BASE_URL", "https://api.aviationstack.com"),
		Timeout: GetDuration("FLIGHT_API_TIMEOUT", 8*time.Second),
	}
}
