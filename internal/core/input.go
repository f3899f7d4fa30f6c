package core

// Side identifies one of the two players.
type Side int

const (
	SideLeft  Side = iota // Yellow ship, WASD
	SideRight             // Red ship, arrow keys
)

// Sides lists both sides in evaluation order.
var Sides = [2]Side{SideLeft, SideRight}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Yellow"
	case SideRight:
		return "Red"
	default:
		return "Unknown"
	}
}

// Move is one of the four directional keys bound to a side.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for a single simulation tick.
// Movement keys carry held state, fire keys carry just-pressed state.
// It is a plain value: copies never share state.
type InputFrame struct {
	held  [2][4]bool
	fire  [2]bool
	Close bool // Window-close request; ends the program
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Hold marks a movement key as held for this frame.
func (f *InputFrame) Hold(side Side, m Move) {
	if !validSide(side) || m < MoveUp || m > MoveRight {
		return
	}
	f.held[side][m] = true
}

// Fire marks the side's fire key as just pressed for this frame.
func (f *InputFrame) Fire(side Side) {
	if !validSide(side) {
		return
	}
	f.fire[side] = true
}

// Held returns true if the movement key is held this frame.
// Unknown sides or keys are reported as not held.
func (f InputFrame) Held(side Side, m Move) bool {
	if !validSide(side) || m < MoveUp || m > MoveRight {
		return false
	}
	return f.held[side][m]
}

// Fired returns true if the side's fire key was just pressed this frame.
func (f InputFrame) Fired(side Side) bool {
	if !validSide(side) {
		return false
	}
	return f.fire[side]
}

// Empty returns true when no key is held or pressed.
func (f InputFrame) Empty() bool {
	return f == InputFrame{}
}

func validSide(s Side) bool {
	return s == SideLeft || s == SideRight
}
