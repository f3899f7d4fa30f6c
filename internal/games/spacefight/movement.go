package spacefight

import "github.com/vovakirdan/spacefight/internal/core"

// moveOrder is the order held keys are applied in within one tick.
var moveOrder = [4]core.Move{core.MoveLeft, core.MoveDown, core.MoveRight, core.MoveUp}

// Move applies the side's held movement keys to the ship.
// Each key is an independent single-axis step of velocity units that is
// committed only if the resulting box stays strictly inside bound.
func Move(ship *Ship, in core.InputFrame, bound core.Rect, velocity int) {
	for _, m := range moveOrder {
		if !in.Held(ship.Side, m) {
			continue
		}

		dx, dy := step(m, velocity)
		if core.Within(bound, ship.Box().Offset(dx, dy)) {
			ship.X += dx
			ship.Y += dy
		}
	}
}

func step(m core.Move, velocity int) (dx, dy int) {
	switch m {
	case core.MoveUp:
		return 0, -velocity
	case core.MoveDown:
		return 0, velocity
	case core.MoveLeft:
		return -velocity, 0
	case core.MoveRight:
		return velocity, 0
	}
	return 0, 0
}
