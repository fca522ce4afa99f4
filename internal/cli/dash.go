package cli

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sd/internal/dashboard"
	"github.com/rileyhilliard/sd/internal/errors"
	"github.com/rileyhilliard/sd/internal/feed"
	"github.com/rileyhilliard/sd/internal/render"
	"golang.org/x/term"
)

// dashCommand starts the interactive preview.
func dashCommand(sizeToken, endpoint string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrRender,
			"The interactive preview needs a terminal",
			"Use 'sd status' for non-interactive output")
	}

	cfg, err := loadConfig(endpoint)
	if err != nil {
		return err
	}

	client := feed.NewClient(cfg.Endpoint, cfg.Timeout)

	styles := render.DefaultStyles()
	styles.Brand = cfg.Brand

	opts := []dashboard.Option{dashboard.WithStyles(styles)}

	// An explicit non-auto size pins the layout; otherwise it follows
	// terminal width.
	token := sizeToken
	if token == "" {
		token = cfg.Size
	}
	if token != "" && !strings.EqualFold(strings.TrimSpace(token), "auto") {
		opts = append(opts, dashboard.WithSize(render.ParseSize(token)))
	}

	p := tea.NewProgram(dashboard.New(client, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"The interactive preview crashed",
			"Run with SD_DEBUG=1 for details")
	}
	return nil
}
