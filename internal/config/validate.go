package config

import (
	"net/url"

	"github.com/rileyhilliard/sd/internal/errors"
	"github.com/rileyhilliard/sd/internal/render"
)

// validSizes are the accepted size tokens. "auto" resolves to one of the
// render sizes at run time from terminal width.
var validSizes = map[string]bool{
	"auto":                       true,
	render.SizeCompact.String():  true,
	render.SizeMedium.String():   true,
	render.SizeDetailed.String(): true,
}

// Validate checks a config for values that would fail at run time.
func Validate(cfg *Config) error {
	if cfg.Endpoint == "" {
		return errors.New(errors.ErrConfig,
			"No feed endpoint configured",
			"Set 'endpoint' in your config or pass --endpoint")
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(errors.ErrConfig,
			"Feed endpoint is not a valid http(s) URL: "+cfg.Endpoint,
			"Use a full URL like https://status.example.com/api/v1/status")
	}

	if !validSizes[cfg.Size] {
		return errors.New(errors.ErrConfig,
			"Unknown size: "+cfg.Size,
			"Use auto, compact, medium, or detailed")
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"Timeout must be positive",
			"Use a duration like 10s or 1m")
	}

	return nil
}
