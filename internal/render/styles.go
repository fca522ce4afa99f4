// Package render turns a fetched snapshot and its computed aggregates into
// one of three fixed terminal layouts. Renderers are pure: (snapshot,
// styles) in, string out, with every layout constant carried in an
// immutable Styles value.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sd/internal/metrics"
)

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorOK    lipgloss.Color = "2" // Green
	ColorWarn  lipgloss.Color = "3" // Yellow
	ColorBad   lipgloss.Color = "1" // Red
	ColorMuted lipgloss.Color = "8" // Gray (bright black)
	ColorText  lipgloss.Color = "7" // White/default
)

// Status glyphs for the detailed view rows.
const (
	GlyphOnline  = "●"
	GlyphOffline = "○"
)

// Fixed layout constants. Column widths and overall width are static, not
// computed from content.
const (
	DefaultWidth = 46

	StatusColWidth  = 8
	ServiceColWidth = 22
	UptimeColWidth  = 7
)

// DefaultBrand is the branding label shown on the right of the footer.
const DefaultBrand = "sd · status deck"

// Styles carries every color and layout constant the renderers use.
// Passed explicitly into each renderer instead of living as shared
// package state.
type Styles struct {
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style
	Muted lipgloss.Style
	Title lipgloss.Style
	Big   lipgloss.Style

	Width int
	Brand string
}

// DefaultStyles returns the standard palette and layout.
func DefaultStyles() Styles {
	return Styles{
		OK:    lipgloss.NewStyle().Foreground(ColorOK),
		Warn:  lipgloss.NewStyle().Foreground(ColorWarn),
		Bad:   lipgloss.NewStyle().Foreground(ColorBad),
		Muted: lipgloss.NewStyle().Foreground(ColorMuted),
		Title: lipgloss.NewStyle().Foreground(ColorText).Bold(true),
		Big:   lipgloss.NewStyle().Bold(true),

		Width: DefaultWidth,
		Brand: DefaultBrand,
	}
}

// ForHealth maps a health band to its style.
func (s Styles) ForHealth(h metrics.Health) lipgloss.Style {
	switch h {
	case metrics.HealthOK:
		return s.OK
	case metrics.HealthWarn:
		return s.Warn
	default:
		return s.Bad
	}
}
