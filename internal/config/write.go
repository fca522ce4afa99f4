package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sd/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# sd configuration
# endpoint: status feed URL (one GET per run, JSON snapshot body)
# size:     auto | compact | medium | detailed
# timeout:  feed request timeout
# brand:    footer branding label
`

// fileConfig mirrors Config with the timeout as a duration string, so the
// written YAML says "10s" instead of raw nanoseconds.
type fileConfig struct {
	Endpoint string `yaml:"endpoint"`
	Size     string `yaml:"size"`
	Timeout  string `yaml:"timeout"`
	Brand    string `yaml:"brand"`
}

// Write marshals the config to YAML and writes it to path, creating
// parent directories as needed.
func Write(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	out := fileConfig{
		Endpoint: cfg.Endpoint,
		Size:     cfg.Size,
		Timeout:  cfg.Timeout.String(),
		Brand:    cfg.Brand,
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is a bug; please report it")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is a bug; please report it")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory: "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file: "+path,
			"Check file permissions")
	}

	return nil
}
