package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/rileyhilliard/sd/internal/feed"
	"github.com/rileyhilliard/sd/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func TestResolveSize(t *testing.T) {
	tests := []struct {
		name      string
		flagToken string
		cfgToken  string
		want      render.Size
	}{
		{"flag wins over config", "compact", "detailed", render.SizeCompact},
		{"config used when flag empty", "", "medium", render.SizeMedium},
		{"unrecognized flag falls back to detailed", "banana", "medium", render.SizeDetailed},
		{"unrecognized config falls back to detailed", "", "jumbo", render.SizeDetailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveSize(tt.flagToken, tt.cfgToken))
		})
	}
}

func TestResolveSizeAuto(t *testing.T) {
	// Under 'go test' stdout is rarely a real terminal; either way auto
	// must resolve to one of the three layouts without falling over.
	got := resolveSize("", "auto")
	assert.Contains(t, []render.Size{render.SizeCompact, render.SizeMedium, render.SizeDetailed}, got)

	got = resolveSize("auto", "")
	assert.Contains(t, []render.Size{render.SizeCompact, render.SizeMedium, render.SizeDetailed}, got)
}

// captureStdout runs fn while capturing everything written to stdout.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	require.NoError(t, runErr)
	return buf.String()
}

func TestOutputStatusJSON(t *testing.T) {
	snap := &feed.Snapshot{
		ServiceCount: 2,
		Services: []feed.Service{
			{Name: "API", Up: true, Uptime: pct(100)},
			{Name: "DB", Up: false, Uptime: pct(80)},
		},
		MeasuredAt: feed.FeedTime{Time: time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC)},
	}

	raw := captureStdout(t, func() error {
		return outputStatusJSON(snap)
	})

	var out StatusOutput
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	assert.Equal(t, 1, out.Online)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 90, out.AverageUptime)
	assert.Equal(t, "bad", out.Health) // 1 of 2 is exactly half
	require.Len(t, out.Services, 2)
	assert.Equal(t, "API", out.Services[0].Name)
	assert.Equal(t, "ok", out.Services[0].Health)
	assert.Equal(t, "bad", out.Services[1].Health)
}

func TestOutputStatusJSONMissingUptime(t *testing.T) {
	snap := &feed.Snapshot{
		Services: []feed.Service{{Name: "Cache", Up: true}},
	}

	raw := captureStdout(t, func() error {
		return outputStatusJSON(snap)
	})

	assert.NotContains(t, raw, "uptime_1h")
	assert.NotContains(t, raw, `"health": ""`)

	var out StatusOutput
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	require.Len(t, out.Services, 1)
	assert.Nil(t, out.Services[0].Uptime)
	assert.Empty(t, out.Services[0].Health)
}

func TestLoadConfigEndpointOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("https://override.example.com/status")
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com/status", cfg.Endpoint)
}

func TestLoadConfigRejectsBadOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := loadConfig("not a url")
	assert.Error(t, err)
}
