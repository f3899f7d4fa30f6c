// Package config provides YAML-based rules loading for spacefight.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/spacefight/internal/registry"
)

// SpacefightConfig contains all tunable rules for a match.
type SpacefightConfig struct {
	Arena  string       `yaml:"arena"`
	Ship   ShipConfig   `yaml:"ship"`
	Bullet BulletConfig `yaml:"bullet"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Audio  AudioConfig  `yaml:"audio"`
}

// ShipConfig defines spaceship size, speed and durability.
type ShipConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Velocity      int `yaml:"velocity"`       // Field units per tick per axis
	InitialHealth int `yaml:"initial_health"` // Hits a ship survives minus one
}

// BulletConfig defines projectile size, speed and the per-side cap.
type BulletConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Velocity int `yaml:"velocity"`
	Capacity int `yaml:"capacity"` // Max live bullets per side
}

// TimingConfig defines the fixed tick rate and the winner banner hold.
type TimingConfig struct {
	TickRate    int           `yaml:"tick_rate"`
	BannerPause time.Duration `yaml:"banner_pause"`
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// AudioConfig controls the synthesized sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// Validate reports every rule that would make the simulation meaningless.
func (c SpacefightConfig) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value int
	}{
		{"ship.width", c.Ship.Width},
		{"ship.height", c.Ship.Height},
		{"ship.velocity", c.Ship.Velocity},
		{"ship.initial_health", c.Ship.InitialHealth},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.velocity", c.Bullet.Velocity},
		{"bullet.capacity", c.Bullet.Capacity},
		{"timing.tick_rate", c.Timing.TickRate},
		{"input.hold_ticks", c.Input.HoldTicks},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}

	if !registry.Exists(c.Arena) {
		errs = append(errs, fmt.Errorf("arena %q is not registered", c.Arena))
	}
	if c.Timing.BannerPause < 0 {
		errs = append(errs, fmt.Errorf("timing.banner_pause must not be negative, got %s", c.Timing.BannerPause))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rules: %w", errors.Join(errs...))
	}
	return nil
}
