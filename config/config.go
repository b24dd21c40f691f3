// Package config loads the optional YAML configuration file. Absent
// file or absent fields fall back to the defaults in parameter.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"seatmap/parameter"
)

// Config is the full application configuration
type Config struct {
	LOD    LODConfig    `yaml:"lod"`
	Status StatusConfig `yaml:"status"`
	Venue  VenueConfig  `yaml:"venue"`
	Audio  bool         `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// LODConfig sets the tier thresholds over viewport scale
type LODConfig struct {
	ZoneThreshold float64 `yaml:"zone_threshold"`
	RowThreshold  float64 `yaml:"row_threshold"`
}

// StatusConfig tunes the booking-feed simulator
type StatusConfig struct {
	TickMillis   int     `yaml:"tick_millis"`
	SeatsPerTick int     `yaml:"seats_per_tick"`
	HoldProb     float64 `yaml:"hold_prob"`
	ReleaseProb  float64 `yaml:"release_prob"`
}

// VenueConfig sets the generated venue shape
type VenueConfig struct {
	Zones       int   `yaml:"zones"`
	RowsPerZone int   `yaml:"rows_per_zone"`
	SeatsPerRow int   `yaml:"seats_per_row"`
	Seed        int64 `yaml:"seed"`
}

// LogConfig sets the log sink; stdout belongs to the terminal UI
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LOD: LODConfig{
			ZoneThreshold: parameter.LODZoneThreshold,
			RowThreshold:  parameter.LODRowThreshold,
		},
		Status: StatusConfig{
			TickMillis:   int(parameter.StatusTickInterval / time.Millisecond),
			SeatsPerTick: parameter.StatusSeatsPerTick,
			HoldProb:     parameter.StatusHoldProbability,
			ReleaseProb:  parameter.StatusReleaseProbability,
		},
		Venue: VenueConfig{
			Zones:       3,
			RowsPerZone: 14,
			SeatsPerRow: 28,
			Seed:        1,
		},
		Audio: true,
		Log: LogConfig{
			File:  "seatmap.log",
			Level: "info",
		},
	}
}

// Load reads path and overlays it on the defaults
// An empty path returns the defaults unchanged
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot run with
func (c Config) Validate() error {
	if c.LOD.ZoneThreshold <= 0 || c.LOD.RowThreshold <= 0 {
		return fmt.Errorf("lod thresholds must be positive, got %.3f and %.3f", c.LOD.ZoneThreshold, c.LOD.RowThreshold)
	}
	if c.LOD.ZoneThreshold >= c.LOD.RowThreshold {
		return fmt.Errorf("zone threshold %.3f must be below row threshold %.3f", c.LOD.ZoneThreshold, c.LOD.RowThreshold)
	}
	if c.Status.TickMillis <= 0 {
		return fmt.Errorf("status tick_millis must be positive, got %d", c.Status.TickMillis)
	}
	if c.Status.SeatsPerTick <= 0 {
		return fmt.Errorf("status seats_per_tick must be positive, got %d", c.Status.SeatsPerTick)
	}
	if bad(c.Status.HoldProb) || bad(c.Status.ReleaseProb) {
		return fmt.Errorf("status probabilities must be in [0, 1], got hold=%.3f release=%.3f", c.Status.HoldProb, c.Status.ReleaseProb)
	}
	if c.Venue.Zones <= 0 || c.Venue.RowsPerZone <= 0 || c.Venue.SeatsPerRow <= 0 {
		return fmt.Errorf("venue shape must be positive, got %dx%dx%d", c.Venue.Zones, c.Venue.RowsPerZone, c.Venue.SeatsPerRow)
	}
	return nil
}

// TickInterval returns the status tick period as a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Status.TickMillis) * time.Millisecond
}

func bad(p float64) bool {
	return p < 0 || p > 1
}
