package spacefight

import (
	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/registry"
)

// Phase is the state of a match.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Match tracks both ships and decides the winner.
// Once ended it accepts no further hits; a new Match is the only way out.
type Match struct {
	ships  [2]Ship
	phase  Phase
	winner core.Side
}

// NewMatch places both ships at the layout's spawn points with full health.
func NewMatch(layout registry.Layout, shipW, shipH, health int) *Match {
	m := &Match{phase: PhaseRunning}
	for _, side := range core.Sides {
		p := layout.Spawn[side]
		m.ships[side] = Ship{
			Side:   side,
			X:      p.X,
			Y:      p.Y,
			W:      shipW,
			H:      shipH,
			Health: health,
		}
	}
	return m
}

// Ship returns the side's ship. Callers may move it but must not touch Health.
func (m *Match) Ship(side core.Side) *Ship {
	return &m.ships[side]
}

// Ships returns a copy of both ships indexed by side.
func (m *Match) Ships() [2]Ship {
	return m.ships
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Ended returns true once a ship has been destroyed.
func (m *Match) Ended() bool {
	return m.phase == PhaseEnded
}

// Winner returns the winning side. Only meaningful when Ended is true.
func (m *Match) Winner() core.Side {
	return m.winner
}

// Apply decrements health by one per hit event and returns the events that
// were applied. Hits on the left ship are applied before hits on the right
// ship. The first ship to reach zero health ends the match; its opponent
// wins and any remaining events are discarded.
func (m *Match) Apply(hits []HitEvent) []HitEvent {
	if m.Ended() || len(hits) == 0 {
		return nil
	}

	applied := make([]HitEvent, 0, len(hits))
	for _, target := range core.Sides {
		for _, h := range hits {
			if h.Target != target {
				continue
			}

			ship := &m.ships[target]
			ship.Health--
			applied = append(applied, h)

			if ship.Health <= 0 {
				m.phase = PhaseEnded
				m.winner = target.Opponent()
				return applied
			}
		}
	}
	return applied
}
