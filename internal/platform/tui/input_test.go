package tui

import (
	"testing"

	"github.com/vovakirdan/spacefight/internal/core"
)

func TestInputTrackerHoldWindow(t *testing.T) {
	tr := NewInputTracker(3)
	tr.Press(core.SideLeft, core.MoveUp)

	for i := 0; i < 3; i++ {
		in := tr.Frame()
		if !in.Held(core.SideLeft, core.MoveUp) {
			t.Errorf("frame %d: key released early", i)
		}
	}

	if in := tr.Frame(); in.Held(core.SideLeft, core.MoveUp) {
		t.Error("key still held after hold window")
	}
}

func TestInputTrackerRepeatExtendsHold(t *testing.T) {
	tr := NewInputTracker(2)
	tr.Press(core.SideRight, core.MoveLeft)
	tr.Frame()
	tr.Press(core.SideRight, core.MoveLeft)

	for i := 0; i < 2; i++ {
		if in := tr.Frame(); !in.Held(core.SideRight, core.MoveLeft) {
			t.Errorf("frame %d after repeat: key not held", i)
		}
	}
}

func TestInputTrackerFireIsEdge(t *testing.T) {
	tr := NewInputTracker(8)
	tr.Fire(core.SideLeft)

	in := tr.Frame()
	if !in.Fired(core.SideLeft) {
		t.Error("fire press missing from first frame")
	}
	if in.Fired(core.SideRight) {
		t.Error("fire press leaked to the other side")
	}
	if in = tr.Frame(); in.Fired(core.SideLeft) {
		t.Error("fire press repeated in second frame")
	}
}

func TestInputTrackerApply(t *testing.T) {
	tests := []struct {
		name  string
		ev    KeyEvent
		held  bool
		fired bool
	}{
		{"move", KeyEvent{Side: core.SideRight, Move: core.MoveDown, OK: true}, true, false},
		{"fire", KeyEvent{Side: core.SideRight, Fire: true, OK: true}, false, true},
		{"quit", KeyEvent{Quit: true, OK: true}, false, false},
		{"unbound", KeyEvent{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewInputTracker(8)
			tr.Apply(tt.ev)
			in := tr.Frame()

			if got := in.Held(core.SideRight, core.MoveDown); got != tt.held {
				t.Errorf("Held = %v, expected %v", got, tt.held)
			}
			if got := in.Fired(core.SideRight); got != tt.fired {
				t.Errorf("Fired = %v, expected %v", got, tt.fired)
			}
		})
	}
}

func TestInputTrackerClear(t *testing.T) {
	tr := NewInputTracker(8)
	tr.Press(core.SideLeft, core.MoveRight)
	tr.Fire(core.SideRight)

	tr.Clear()

	if in := tr.Frame(); !in.Empty() {
		t.Error("frame not empty after Clear")
	}
}

func TestInputTrackerCloseSticks(t *testing.T) {
	tr := NewInputTracker(8)
	tr.Apply(KeyEvent{Quit: true, OK: true})

	for i := 0; i < 2; i++ {
		if in := tr.Frame(); !in.Close {
			t.Errorf("frame %d: Close = false, expected true", i)
		}
	}
}
