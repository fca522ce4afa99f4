package dashboard

import (
	"strings"

	"github.com/rileyhilliard/sd/internal/render"
)

// View renders the preview: spinner while fetching, an error state on
// failure, otherwise the selected layout plus a key hint footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Fetching status feed...")

	case m.err != nil:
		// In-TUI error state instead of aborting: the viewer can retry
		// without restarting.
		b.WriteString(m.styles.Bad.Render("Couldn't load the status feed"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render(strings.TrimSpace(m.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("press r to retry"))

	default:
		b.WriteString(render.Render(m.size, m.snap, m.styles))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHints())
	return b.String()
}

// renderHints renders the keyboard help footer.
func (m Model) renderHints() string {
	hints := []string{
		"q quit",
		"r refresh",
		"s size (" + m.size.String() + ")",
	}
	return m.styles.Muted.Render(strings.Join(hints, " | "))
}
