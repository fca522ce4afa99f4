package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sd/internal/config"
	"github.com/rileyhilliard/sd/internal/errors"
)

// initCommand writes an .sd.yaml in the current directory, prompting for
// the endpoint and default size unless --no-prompt is set.
func initCommand(force, noPrompt bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	path := filepath.Join(cwd, config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			config.ConfigFileName+" already exists",
			"Use --force to overwrite it")
	}

	cfg := config.Default()

	if !noPrompt {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// promptConfig fills in endpoint and size interactively.
func promptConfig(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Status feed endpoint").
				Description("URL serving the JSON status snapshot").
				Value(&cfg.Endpoint).
				Validate(func(s string) error {
					u, err := url.Parse(s)
					if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
						return fmt.Errorf("enter a full http(s) URL")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Default layout size").
				Options(
					huh.NewOption("auto (from terminal width)", "auto"),
					huh.NewOption("compact", "compact"),
					huh.NewOption("medium", "medium"),
					huh.NewOption("detailed", "detailed"),
				).
				Value(&cfg.Size),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Init cancelled",
			"Run 'sd init --no-prompt' to write defaults without prompting")
	}
	return nil
}
