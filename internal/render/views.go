package render

import (
	"fmt"
	"strconv"

	"github.com/rileyhilliard/sd/internal/feed"
	"github.com/rileyhilliard/sd/internal/metrics"
)

const viewTitle = "Service Status"

// Render dispatches to the layout selected by size and returns the
// composed view. Services are expected pre-sorted; renderers never
// reorder or validate.
func Render(size Size, snap *feed.Snapshot, st Styles) string {
	srf := NewTermSurface(st.Width)

	switch size {
	case SizeCompact:
		renderCompact(srf, snap, st)
	case SizeMedium:
		renderMedium(srf, snap, st)
	default:
		renderDetailed(srf, snap, st)
	}

	return srf.String()
}

// renderCompact shows a single large online/total figure.
func renderCompact(s Surface, snap *feed.Snapshot, st Styles) {
	online := metrics.OnlineCount(snap.Services)
	total := len(snap.Services)

	figure := fmt.Sprintf("%d / %d UP", online, total)
	style := st.Big.Foreground(st.ForHealth(metrics.OnlineHealth(online, total)).GetForeground())

	s.Text(style, figure)
	s.Text(st.Muted, "services online")
	s.Spacer()
	renderFooter(s, snap, st)
}

// renderMedium shows the online figure and the average uptime side by side.
func renderMedium(s Surface, snap *feed.Snapshot, st Styles) {
	online := metrics.OnlineCount(snap.Services)
	total := len(snap.Services)
	avg := metrics.AverageUptime(snap.Services)

	// Online figure is green only when everything is up; anything less
	// gets the warn color regardless of how bad it is.
	onlineStyle := st.Warn
	if online == total {
		onlineStyle = st.OK
	}

	const colWidth = 18
	onlineFigure := onlineStyle.Bold(true).Render(fmt.Sprintf("%d/%d online", online, total))
	uptimeFigure := st.ForHealth(metrics.UptimeHealth(float64(avg))).Bold(true).Render(fmt.Sprintf("%d%%", avg))

	s.Text(st.Title, viewTitle)
	s.Spacer()
	s.Row(PadRight(onlineFigure, colWidth), uptimeFigure)
	s.Row(PadRight(st.Muted.Render("services"), colWidth), st.Muted.Render("avg uptime (1h)"))
	s.Spacer()
	renderFooter(s, snap, st)
}

// renderDetailed shows a legend header and one row per service in the
// pre-sorted order.
func renderDetailed(s Surface, snap *feed.Snapshot, st Styles) {
	s.Text(st.Title, viewTitle)
	s.Spacer()

	s.Row(
		PadRight(st.Muted.Render("STATUS"), StatusColWidth),
		PadRight(st.Muted.Render("SERVICE"), ServiceColWidth),
		PadRight(st.Muted.Render("UPTIME"), UptimeColWidth),
	)

	for _, svc := range snap.Services {
		glyph := st.Bad.Render(GlyphOffline)
		if svc.Up {
			glyph = st.OK.Render(GlyphOnline)
		}

		s.Row(
			PadRight(glyph, StatusColWidth),
			PadRight(svc.Name, ServiceColWidth),
			PadRight(renderUptimeCell(svc.Uptime, st), UptimeColWidth),
		)
	}

	s.Spacer()
	renderFooter(s, snap, st)
}

// renderUptimeCell formats one service's uptime, colored by its health
// band. A missing uptime renders as a muted placeholder rather than a
// fabricated 0%.
func renderUptimeCell(uptime *float64, st Styles) string {
	if uptime == nil {
		return st.Muted.Render("--")
	}
	text := strconv.FormatFloat(*uptime, 'f', -1, 64) + "%"
	return st.ForHealth(metrics.UptimeHealth(*uptime)).Render(text)
}

// renderFooter appends the shared two-part footer: formatted last-update
// time on the left, branding on the right. 24-hour clock, host local time.
func renderFooter(s Surface, snap *feed.Snapshot, st Styles) {
	updated := "Last update: " + snap.MeasuredAt.Local().Format("15:04")
	s.Split(st.Muted.Render(updated), st.Muted.Render(st.Brand))
}
