package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rileyhilliard/sd/internal/config"
	"github.com/rileyhilliard/sd/internal/feed"
	"github.com/rileyhilliard/sd/internal/metrics"
	"github.com/rileyhilliard/sd/internal/render"
	"golang.org/x/term"
)

// StatusOutput is the JSON shape for 'sd status --json'.
type StatusOutput struct {
	Online        int             `json:"online"`
	Total         int             `json:"total"`
	AverageUptime int             `json:"average_uptime"`
	Health        string          `json:"health"`
	Services      []ServiceStatus `json:"services"`
	MeasuredAt    time.Time       `json:"last_measurement_at"`
}

// ServiceStatus is one service in the JSON output.
type ServiceStatus struct {
	Name   string   `json:"name"`
	Up     bool     `json:"up"`
	Uptime *float64 `json:"uptime_1h,omitempty"`
	Health string   `json:"health,omitempty"`
}

// statusCommand implements the status command: one fetch, one render.
func statusCommand(sizeToken, endpoint string, asJSON bool) error {
	cfg, err := loadConfig(endpoint)
	if err != nil {
		return err
	}

	client := feed.NewClient(cfg.Endpoint, cfg.Timeout)
	snap, err := client.Fetch(context.Background())
	if err != nil {
		// Fetch and decode failures abort the run; there is no fallback
		// output in one-shot mode.
		return err
	}
	snap.SortServices()

	if asJSON {
		return outputStatusJSON(snap)
	}

	styles := render.DefaultStyles()
	styles.Brand = cfg.Brand

	size := resolveSize(sizeToken, cfg.Size)
	fmt.Println(render.Render(size, snap, styles))
	return nil
}

// loadConfig loads and validates config, applying the --endpoint override.
func loadConfig(endpoint string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSize resolves the effective layout size. An explicit flag wins
// over config; 'auto' (or nothing at all) picks from terminal width; any
// other unrecognized token falls back to detailed via ParseSize.
func resolveSize(flagToken, cfgToken string) render.Size {
	token := flagToken
	if token == "" {
		token = cfgToken
	}
	if token == "" || strings.EqualFold(strings.TrimSpace(token), "auto") {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return render.AutoSize(w)
		}
		return render.SizeDetailed
	}
	return render.ParseSize(token)
}

// outputStatusJSON writes the computed summary as indented JSON.
func outputStatusJSON(snap *feed.Snapshot) error {
	online := metrics.OnlineCount(snap.Services)
	total := len(snap.Services)

	out := StatusOutput{
		Online:        online,
		Total:         total,
		AverageUptime: metrics.AverageUptime(snap.Services),
		Health:        metrics.OnlineHealth(online, total).String(),
		Services:      make([]ServiceStatus, 0, total),
		MeasuredAt:    snap.MeasuredAt.Time,
	}

	for _, svc := range snap.Services {
		s := ServiceStatus{
			Name:   svc.Name,
			Up:     svc.Up,
			Uptime: svc.Uptime,
		}
		if svc.Uptime != nil {
			s.Health = metrics.UptimeHealth(*svc.Uptime).String()
		}
		out.Services = append(out.Services, s)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
