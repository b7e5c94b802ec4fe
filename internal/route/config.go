package route

import (
	"os"
	"strconv"
)

// Config holds all configuration for the route-suggestion subsystem.
// Suggestions are disabled by default; the itinerary engine never
// depends on them.
type Config struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		Temperature: 0.2,
		MaxTokens:   1024,
		TimeoutMs:   15000,
		MaxRetries:  1,
	}
}

// LoadConfig reads route configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TOKYOSYNC_ROUTE_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TOKYOSYNC_ROUTE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TOKYOSYNC_ROUTE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TOKYOSYNC_ROUTE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TOKYOSYNC_ROUTE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TOKYOSYNC_ROUTE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
