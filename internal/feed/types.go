// Package feed fetches and decodes the JSON status feed that drives the
// dashboard. One fetch produces one immutable Snapshot; nothing is cached
// or persisted between runs.
package feed

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Service is one monitored service as reported by the feed.
// Name is a display label, not guaranteed globally unique.
type Service struct {
	Name string `json:"name"`
	Up   bool   `json:"up"`
	// Uptime is the percentage (0-100) of the last hour the service was
	// reachable. nil when the feed omits the field.
	Uptime *float64 `json:"uptime_1h"`
}

// Snapshot is one fetched set of service statuses at a point in time.
type Snapshot struct {
	// ServiceCount is reported by the feed but never cross-checked against
	// len(Services); all downstream math uses the slice length.
	ServiceCount int       `json:"service_count"`
	Services     []Service `json:"services"`
	MeasuredAt   FeedTime  `json:"last_measurement_at"`
}

// SortServices orders services alphabetically by name, case-insensitive,
// for stable presentation. Called once after fetch.
func (s *Snapshot) SortServices() {
	sort.SliceStable(s.Services, func(i, j int) bool {
		return strings.ToLower(s.Services[i].Name) < strings.ToLower(s.Services[j].Name)
	})
}

// FeedTime decodes the feed's last_measurement_at field, which may arrive
// as an RFC 3339 string, any other date-parseable string, or an epoch
// number (seconds or milliseconds).
type FeedTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *FeedTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		t.Time = time.Time{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", raw, err)
		}
		parsed, err := dateparse.ParseAny(s)
		if err != nil {
			return fmt.Errorf("unparseable timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", raw, err)
	}
	// Heuristic: values past ~year 33658 in seconds are milliseconds.
	if n > 1e12 {
		t.Time = time.UnixMilli(int64(n))
	} else {
		t.Time = time.Unix(int64(n), 0)
	}
	return nil
}
