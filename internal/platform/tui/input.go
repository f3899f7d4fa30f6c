package tui

import "github.com/vovakirdan/spacefight/internal/core"

// InputTracker turns terminal key presses into per-tick input frames.
//
// Terminals report presses but not releases, so a movement key counts as
// held for holdTicks ticks after its last press. Key auto-repeat keeps
// refreshing the window while the key is down. Fire presses are edges and
// last exactly one frame.
type InputTracker struct {
	holdTicks int
	remaining [2][4]int
	fire      [2]bool
	close     bool
}

// NewInputTracker creates a tracker with the given hold window.
func NewInputTracker(holdTicks int) *InputTracker {
	return &InputTracker{holdTicks: core.Max(1, holdTicks)}
}

// Press records a movement key press.
func (t *InputTracker) Press(side core.Side, m core.Move) {
	t.remaining[side][m] = t.holdTicks
}

// Fire records a fire key press for the next frame.
func (t *InputTracker) Fire(side core.Side) {
	t.fire[side] = true
}

// Apply records a decoded key event. Unbound events are ignored.
func (t *InputTracker) Apply(ev KeyEvent) {
	if !ev.OK {
		return
	}
	if ev.Quit {
		t.close = true
		return
	}
	if ev.Fire {
		t.Fire(ev.Side)
		return
	}
	t.Press(ev.Side, ev.Move)
}

// Frame returns the input for the current tick and advances the hold
// windows by one tick.
func (t *InputTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for _, side := range core.Sides {
		for m := core.MoveUp; m <= core.MoveRight; m++ {
			if t.remaining[side][m] > 0 {
				in.Hold(side, m)
				t.remaining[side][m]--
			}
		}
		if t.fire[side] {
			in.Fire(side)
			t.fire[side] = false
		}
	}
	in.Close = t.close
	return in
}

// Clear forgets every held key and pending fire press.
func (t *InputTracker) Clear() {
	t.remaining = [2][4]int{}
	t.fire = [2]bool{}
	t.close = false
}
