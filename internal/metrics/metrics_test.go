package metrics

import (
	"testing"

	"github.com/rileyhilliard/sd/internal/feed"
	"github.com/stretchr/testify/assert"
)

func pct(v float64) *float64 { return &v }

func TestOnlineCount(t *testing.T) {
	tests := []struct {
		name     string
		services []feed.Service
		want     int
	}{
		{"empty", nil, 0},
		{"all up", []feed.Service{{Up: true}, {Up: true}}, 2},
		{"two of three up", []feed.Service{{Up: true}, {Up: false}, {Up: true}}, 2},
		{"none up", []feed.Service{{Up: false}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnlineCount(tt.services))
		})
	}
}

func TestAverageUptime(t *testing.T) {
	tests := []struct {
		name     string
		services []feed.Service
		want     int
	}{
		{"empty returns zero", nil, 0},
		{"hundred and zero averages to fifty", []feed.Service{
			{Uptime: pct(100)},
			{Uptime: pct(0)},
		}, 50},
		{"missing uptime counts as zero", []feed.Service{
			{Uptime: pct(100)},
			{Uptime: nil},
		}, 50},
		{"rounds to nearest integer", []feed.Service{
			{Uptime: pct(99.9)},
			{Uptime: pct(99.4)},
		}, 100}, // mean 99.65 rounds up
		{"single service", []feed.Service{{Uptime: pct(97.2)}}, 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageUptime(tt.services))
		})
	}
}

func TestOnlineHealth(t *testing.T) {
	tests := []struct {
		name   string
		online int
		total  int
		want   Health
	}{
		{"exactly half is bad", 2, 4, HealthBad},
		{"just over half is warn", 3, 4, HealthWarn},
		{"all online is ok", 4, 4, HealthOK},
		{"none online is bad", 0, 3, HealthBad},
		{"one of two is bad", 1, 2, HealthBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnlineHealth(tt.online, tt.total))
		})
	}
}

func TestOnlineHealthZeroTotal(t *testing.T) {
	// 0 <= 0/2 holds, so an empty feed classifies as bad. Pin it.
	assert.Equal(t, HealthBad, OnlineHealth(0, 0))
}

func TestUptimeHealth(t *testing.T) {
	tests := []struct {
		name   string
		uptime float64
		want   Health
	}{
		{"99 is ok", 99, HealthOK},
		{"100 is ok", 100, HealthOK},
		{"98.9 is warn", 98.9, HealthWarn},
		{"95 is warn", 95, HealthWarn},
		{"94 is bad", 94, HealthBad},
		{"zero is bad", 0, HealthBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UptimeHealth(tt.uptime))
		})
	}
}

func TestHealthString(t *testing.T) {
	assert.Equal(t, "ok", HealthOK.String())
	assert.Equal(t, "warn", HealthWarn.String())
	assert.Equal(t, "bad", HealthBad.String())
	assert.Equal(t, "unknown", Health(42).String())
}
