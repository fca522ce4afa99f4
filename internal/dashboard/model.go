// Package dashboard is the interactive preview: an sd run outside an
// embedding host surface. It fetches the feed once, shows the selected
// layout, and lets the viewer refetch or flip between the three sizes.
package dashboard

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sd/internal/feed"
	"github.com/rileyhilliard/sd/internal/render"
)

// Model is the Bubble Tea model for the interactive preview.
type Model struct {
	client *feed.Client
	styles render.Styles

	size render.Size
	// autoSize keeps the layout following terminal width until the
	// viewer picks a size explicitly.
	autoSize bool

	snap    *feed.Snapshot
	err     error
	loading bool

	spinner  spinner.Model
	width    int
	height   int
	quitting bool
}

// snapshotMsg carries a fetched, pre-sorted snapshot.
type snapshotMsg struct {
	snap *feed.Snapshot
}

// fetchFailedMsg carries a fetch or decode failure.
type fetchFailedMsg struct {
	err error
}

// Option configures the model.
type Option func(*Model)

// WithSize pins the layout to an explicit size instead of following
// terminal width.
func WithSize(size render.Size) Option {
	return func(m *Model) {
		m.size = size
		m.autoSize = false
	}
}

// WithStyles overrides the default styles.
func WithStyles(st render.Styles) Option {
	return func(m *Model) {
		m.styles = st
	}
}

// New creates the preview model. By default the layout follows terminal
// width.
func New(client *feed.Client, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(render.ColorWarn)

	m := Model{
		client:   client,
		styles:   render.DefaultStyles(),
		size:     render.SizeDetailed,
		autoSize: true,
		loading:  true,
		spinner:  sp,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the spinner and the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// fetchCmd fetches and sorts one snapshot off the update loop.
func (m Model) fetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		snap, err := client.Fetch(context.Background())
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		snap.SortServices()
		return snapshotMsg{snap: snap}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.autoSize {
			m.size = render.AutoSize(msg.Width)
		}
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		m.err = nil
		m.loading = false
		return m, nil

	case fetchFailedMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())

	case "s":
		m.autoSize = false
		m.size = cycleSize(m.size)
		return m, nil

	case "1":
		m.autoSize = false
		m.size = render.SizeCompact
		return m, nil

	case "2":
		m.autoSize = false
		m.size = render.SizeMedium
		return m, nil

	case "3":
		m.autoSize = false
		m.size = render.SizeDetailed
		return m, nil
	}

	return m, nil
}

// cycleSize steps compact -> medium -> detailed -> compact.
func cycleSize(s render.Size) render.Size {
	switch s {
	case render.SizeCompact:
		return render.SizeMedium
	case render.SizeMedium:
		return render.SizeDetailed
	default:
		return render.SizeCompact
	}
}

// Size returns the currently selected layout size.
func (m Model) Size() render.Size {
	return m.size
}
