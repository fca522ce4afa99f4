package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is the minimal visual-tree capability the renderers compose
// through: styled text blocks, horizontal rows, and vertical spacers.
// Separate implementations can target other UI surfaces; the terminal one
// lives below.
type Surface interface {
	// Text appends one styled line.
	Text(style lipgloss.Style, s string)
	// Row appends one line built from pre-rendered cells joined
	// horizontally.
	Row(cells ...string)
	// Spacer appends an empty line.
	Spacer()
	// Split appends a line with left-aligned and right-aligned halves,
	// padded to the surface width.
	Split(left, right string)
}

// TermSurface is the lipgloss-backed Surface for terminal output.
type TermSurface struct {
	width int
	lines []string
}

// NewTermSurface creates a terminal surface with the given fixed width.
func NewTermSurface(width int) *TermSurface {
	return &TermSurface{width: width}
}

func (t *TermSurface) Text(style lipgloss.Style, s string) {
	t.lines = append(t.lines, style.Render(s))
}

func (t *TermSurface) Row(cells ...string) {
	t.lines = append(t.lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (t *TermSurface) Spacer() {
	t.lines = append(t.lines, "")
}

func (t *TermSurface) Split(left, right string) {
	gap := t.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	t.lines = append(t.lines, left+strings.Repeat(" ", gap)+right)
}

// String returns the composed view.
func (t *TermSurface) String() string {
	return lipgloss.JoinVertical(lipgloss.Left, t.lines...)
}

// PadRight pads a cell to the given visible width, ANSI-aware.
func PadRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
