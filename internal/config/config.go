// Package config loads sd configuration. Every key has a compiled-in
// default so the tool runs with no config file at all; a file only
// overrides the constants.
package config

import (
	"time"

	"github.com/rileyhilliard/sd/internal/render"
)

// Compiled-in defaults.
const (
	// DefaultEndpoint is the status feed polled when no endpoint is
	// configured.
	DefaultEndpoint = "https://status.statusdeck.dev/api/v1/status"
	// DefaultSize picks the layout from terminal width at run time.
	DefaultSize = "auto"
	// DefaultTimeout bounds the single feed request.
	DefaultTimeout = 10 * time.Second
)

// Config holds the full sd configuration.
type Config struct {
	// Endpoint is the status feed URL.
	Endpoint string `mapstructure:"endpoint"`
	// Size is the default display density: auto, compact, medium, or
	// detailed. An explicit --size flag wins over this.
	Size string `mapstructure:"size"`
	// Timeout bounds the feed request.
	Timeout time.Duration `mapstructure:"timeout"`
	// Brand is the footer branding label.
	Brand string `mapstructure:"brand"`
}

// Default returns a config populated with the compiled-in defaults.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Size:     DefaultSize,
		Timeout:  DefaultTimeout,
		Brand:    render.DefaultBrand,
	}
}
