// Package config provides environment-variable fallbacks for the focus
// bridge's command-line flags.
package config

import (
	"os"
	"strconv"
	"time"
)

// Default service configuration.
const (
	DefaultDashboardPort = "8077"
	DefaultLogLevel      = "info"
)

// SensorURL returns the sensing relay URL from SENSOR_URL.
// Falls back to the provided default if not set.
func SensorURL(defaultURL string) string {
	return String("SENSOR_URL", defaultURL)
}

// DashboardPort returns the dashboard port from DASHBOARD_PORT.
func DashboardPort() string {
	return String("DASHBOARD_PORT", DefaultDashboardPort)
}

// LogLevel returns the log level from LOG_LEVEL.
func LogLevel() string {
	return String("LOG_LEVEL", DefaultLogLevel)
}

// String returns the value of the environment variable key, or def if it
// is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Float returns the value of key parsed as a float64, or def if unset or
// unparsable.
func Float(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Duration returns the value of key parsed as a time.Duration, or def if
// unset or unparsable.
func Duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
