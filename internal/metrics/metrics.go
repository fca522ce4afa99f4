// Package metrics computes the dashboard aggregates: online counts, the
// average recent uptime, and the health classification that drives colors.
// Everything here is pure and deterministic.
package metrics

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/rileyhilliard/sd/internal/feed"
)

// Health classifies a metric into one of three bands that map directly
// to the render palette.
type Health int

const (
	HealthOK Health = iota
	HealthWarn
	HealthBad
)

// String returns a human-readable band name.
func (h Health) String() string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthWarn:
		return "warn"
	case HealthBad:
		return "bad"
	default:
		return "unknown"
	}
}

// OnlineCount returns how many services report up.
func OnlineCount(services []feed.Service) int {
	n := 0
	for _, svc := range services {
		if svc.Up {
			n++
		}
	}
	return n
}

// AverageUptime returns the mean of uptime_1h across all services, rounded
// to the nearest integer. A missing uptime counts as 0. Returns 0 for an
// empty slice to avoid dividing by zero.
func AverageUptime(services []feed.Service) int {
	if len(services) == 0 {
		return 0
	}

	values := make([]float64, len(services))
	for i, svc := range services {
		if svc.Uptime != nil {
			values[i] = *svc.Uptime
		}
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return int(math.Round(mean))
}

// OnlineHealth classifies the online/total ratio. Exactly half online is
// bad, not warn; the boundary is deliberate and must hold.
func OnlineHealth(online, total int) Health {
	switch {
	case online <= total/2:
		return HealthBad
	case online < total:
		return HealthWarn
	default:
		return HealthOK
	}
}

// UptimeHealth classifies an uptime percentage. Lower thresholds of each
// band are inclusive: 99 is ok, 95 is warn, anything below 95 is bad.
func UptimeHealth(uptime float64) Health {
	switch {
	case uptime >= 99:
		return HealthOK
	case uptime >= 95:
		return HealthWarn
	default:
		return HealthBad
	}
}
