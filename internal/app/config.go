package app

import (
	"os"
	"strconv"
)

// Config holds application-wide settings.
type Config struct {
	// Debug enables debug logging with source locations.
	Debug bool

	// Theme is "system", "dark", or "light".
	Theme string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		Theme: "system",
	}
}

// ConfigFromEnv builds a configuration from VELD_DEBUG and VELD_THEME,
// falling back to defaults for anything unset or unparseable.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if raw := os.Getenv("VELD_DEBUG"); raw != "" {
		if debug, err := strconv.ParseBool(raw); err == nil {
			cfg.Debug = debug
		}
	}

	switch os.Getenv("VELD_THEME") {
	case "dark":
		cfg.Theme = "dark"
	case "light":
		cfg.Theme = "light"
	}

	return cfg
}
