package tui

import (
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected %q", cfg.Address, ":23234")
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected %v", cfg.IdleTimeout, 30*time.Minute)
	}
	if cfg.Rules.Bullet.Capacity != 3 {
		t.Errorf("Rules.Bullet.Capacity = %d, expected 3", cfg.Rules.Bullet.Capacity)
	}
	if cfg.TickRate != 0 {
		t.Errorf("TickRate = %d, expected 0", cfg.TickRate)
	}
}
