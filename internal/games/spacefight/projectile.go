package spacefight

import "github.com/vovakirdan/spacefight/internal/core"

// Magazine owns the live bullets fired by one side, in fire order.
type Magazine struct {
	side     core.Side
	dir      Direction
	capacity int
	velocity int
	bulletW  int
	bulletH  int
	fieldW   int
	bullets  []Bullet
}

// NewMagazine creates an empty magazine for side.
// fieldW is the width of the play field, used to detect bullets leaving it.
func NewMagazine(side core.Side, capacity, velocity, bulletW, bulletH, fieldW int) *Magazine {
	return &Magazine{
		side:     side,
		dir:      directionFor(side),
		capacity: capacity,
		velocity: velocity,
		bulletW:  bulletW,
		bulletH:  bulletH,
		fieldW:   fieldW,
		bullets:  make([]Bullet, 0, capacity),
	}
}

// TryFire spawns a bullet just outside the shooter's leading edge,
// vertically centred on it. It does nothing once capacity bullets are live.
func (m *Magazine) TryFire(shooter core.Rect) (Bullet, bool) {
	if len(m.bullets) >= m.capacity {
		return Bullet{}, false
	}

	x := shooter.Right()
	if m.dir == RightToLeft {
		x = shooter.X - m.bulletW
	}

	b := Bullet{
		Owner: m.side,
		X:     x,
		Y:     shooter.Y + shooter.H/2 - m.bulletH/2,
		W:     m.bulletW,
		H:     m.bulletH,
		Dir:   m.dir,
	}
	m.bullets = append(m.bullets, b)
	return b, true
}

// Advance moves every live bullet one velocity step in its direction.
func (m *Magazine) Advance() {
	dx := m.velocity
	if m.dir == RightToLeft {
		dx = -dx
	}
	for i := range m.bullets {
		m.bullets[i].X += dx
	}
}

// PruneOutOfBounds drops bullets that passed the far edge of the field
// and returns how many were dropped.
func (m *Magazine) PruneOutOfBounds() int {
	return m.removeIf(func(b Bullet) bool {
		if b.Dir == LeftToRight {
			return b.X > m.fieldW
		}
		return b.X < 0
	})
}

// Bullets returns a copy of the live bullets in fire order.
func (m *Magazine) Bullets() []Bullet {
	out := make([]Bullet, len(m.bullets))
	copy(out, m.bullets)
	return out
}

// Len returns the number of live bullets.
func (m *Magazine) Len() int {
	return len(m.bullets)
}

// Capacity returns the maximum number of live bullets.
func (m *Magazine) Capacity() int {
	return m.capacity
}

// Reset drops every live bullet.
func (m *Magazine) Reset() {
	m.bullets = m.bullets[:0]
}

// removeIf filters bullets in place, keeping fire order, and returns the
// number removed.
func (m *Magazine) removeIf(drop func(Bullet) bool) int {
	kept := m.bullets[:0]
	for _, b := range m.bullets {
		if !drop(b) {
			kept = append(kept, b)
		}
	}
	removed := len(m.bullets) - len(kept)
	m.bullets = kept
	return removed
}
