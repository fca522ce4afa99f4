package render

import "strings"

// Size is the requested display density. It selects which of the three
// fixed layouts runs.
type Size int

const (
	SizeCompact Size = iota
	SizeMedium
	SizeDetailed
)

// Width breakpoints for picking a size from terminal width when the host
// passes no explicit token.
const (
	BreakpointMedium   = 80
	BreakpointDetailed = 120
)

// String returns the size token.
func (s Size) String() string {
	switch s {
	case SizeCompact:
		return "compact"
	case SizeMedium:
		return "medium"
	case SizeDetailed:
		return "detailed"
	default:
		return "detailed"
	}
}

// ParseSize maps a size token to a Size. Any unrecognized token falls back
// to detailed; that default-case policy is load-bearing.
func ParseSize(token string) Size {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "compact":
		return SizeCompact
	case "medium":
		return SizeMedium
	case "detailed":
		return SizeDetailed
	default:
		return SizeDetailed
	}
}

// AutoSize picks a size from the terminal width. Wider terminals get the
// denser layouts.
func AutoSize(width int) Size {
	switch {
	case width >= BreakpointDetailed:
		return SizeDetailed
	case width >= BreakpointMedium:
		return SizeMedium
	default:
		return SizeCompact
	}
}
