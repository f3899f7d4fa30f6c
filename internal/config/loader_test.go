package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultSpacefightYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultSpacefightConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSpacefightConfig())
	}
}

func TestDefaultRules(t *testing.T) {
	cfg := DefaultSpacefightConfig()

	if cfg.Bullet.Capacity != 3 {
		t.Errorf("Bullet.Capacity = %d, expected 3", cfg.Bullet.Capacity)
	}
	if cfg.Ship.InitialHealth != 10 {
		t.Errorf("Ship.InitialHealth = %d, expected 10", cfg.Ship.InitialHealth)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("Timing.TickRate = %d, expected 60", cfg.Timing.TickRate)
	}
	if cfg.Timing.BannerPause != 5*time.Second {
		t.Errorf("Timing.BannerPause = %s, expected 5s", cfg.Timing.BannerPause)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
bullet:
  capacity: 5
timing:
  banner_pause: 2500ms
arena: open
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Bullet.Capacity != 5 {
		t.Errorf("Bullet.Capacity = %d, expected 5", cfg.Bullet.Capacity)
	}
	if cfg.Bullet.Velocity != 7 {
		t.Errorf("Bullet.Velocity = %d, expected default 7", cfg.Bullet.Velocity)
	}
	if cfg.Timing.BannerPause != 2500*time.Millisecond {
		t.Errorf("Timing.BannerPause = %s, expected 2.5s", cfg.Timing.BannerPause)
	}
	if cfg.Arena != "open" {
		t.Errorf("Arena = %q, expected open", cfg.Arena)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{"zero capacity", "bullet:\n  capacity: 0\n", "bullet.capacity"},
		{"negative velocity", "ship:\n  velocity: -1\n", "ship.velocity"},
		{"zero tick rate", "timing:\n  tick_rate: 0\n", "timing.tick_rate"},
		{"unknown arena", "arena: nebula\n", "nebula"},
		{"loud volume", "audio:\n  volume: 2\n", "audio.volume"},
		{"malformed", "ship: [1, 2\n", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded, expected an error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("ship:\n  initial_health: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSpacefight(path)
	if err != nil {
		t.Fatalf("LoadSpacefight() failed: %v", err)
	}
	if cfg.Ship.InitialHealth != 3 {
		t.Errorf("Ship.InitialHealth = %d, expected 3", cfg.Ship.InitialHealth)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadSpacefight(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadSpacefight() with a missing file should fail")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadSpacefight("")
	if err != nil {
		t.Fatalf("LoadSpacefight(\"\") failed: %v", err)
	}
	if cfg != DefaultSpacefightConfig() {
		t.Errorf("LoadSpacefight(\"\") = %+v, expected defaults", cfg)
	}
}
