package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/spacefight/internal/registry"
)

//go:embed defaults/spacefight.yaml
var defaultSpacefightYAML []byte

// DefaultSpacefightConfig returns the built-in rules.
func DefaultSpacefightConfig() SpacefightConfig {
	return SpacefightConfig{
		Arena: registry.DefaultArena,
		Ship: ShipConfig{
			Width:         55,
			Height:        40,
			Velocity:      5,
			InitialHealth: 10,
		},
		Bullet: BulletConfig{
			Width:    10,
			Height:   5,
			Velocity: 7,
			Capacity: 3,
		},
		Timing: TimingConfig{
			TickRate:    60,
			BannerPause: 5 * time.Second,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
