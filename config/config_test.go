package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Less(t, cfg.LOD.ZoneThreshold, cfg.LOD.RowThreshold)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seatmap.yaml")
	body := `
lod:
  zone_threshold: 0.15
  row_threshold: 0.55
status:
  tick_millis: 250
venue:
  seed: 99
audio: false
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.15, cfg.LOD.ZoneThreshold)
	assert.Equal(t, 0.55, cfg.LOD.RowThreshold)
	assert.Equal(t, 250, cfg.Status.TickMillis)
	assert.Equal(t, int64(99), cfg.Venue.Seed)
	assert.False(t, cfg.Audio)

	// Untouched fields keep their defaults
	assert.Equal(t, Default().Venue.SeatsPerRow, cfg.Venue.SeatsPerRow)
	assert.Equal(t, Default().Status.HoldProb, cfg.Status.HoldProb)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted thresholds", func(c *Config) { c.LOD.ZoneThreshold = 0.5; c.LOD.RowThreshold = 0.2 }},
		{"zero zone threshold", func(c *Config) { c.LOD.ZoneThreshold = 0 }},
		{"zero tick", func(c *Config) { c.Status.TickMillis = 0 }},
		{"negative seats per tick", func(c *Config) { c.Status.SeatsPerTick = -1 }},
		{"probability above one", func(c *Config) { c.Status.HoldProb = 1.5 }},
		{"negative probability", func(c *Config) { c.Status.ReleaseProb = -0.1 }},
		{"empty venue", func(c *Config) { c.Venue.Zones = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
