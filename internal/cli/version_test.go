package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays empty", "", ""},
		{"bare version gets v prefix", "1.2.3", "v1.2.3"},
		{"prefixed version unchanged", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "1.0.0", GetVersion())
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"status", "dash", "init", "version", "completion"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
