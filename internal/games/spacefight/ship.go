package spacefight

import "github.com/vovakirdan/spacefight/internal/core"

// Ship is one player's spaceship.
type Ship struct {
	Side   core.Side
	X, Y   int
	W, H   int
	Health int
}

// Box returns the ship's collision box.
func (s Ship) Box() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}

// Direction is the fixed horizontal travel direction of a bullet.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// directionFor returns the direction bullets fired by side travel in.
func directionFor(side core.Side) Direction {
	if side == core.SideLeft {
		return LeftToRight
	}
	return RightToLeft
}

// Bullet is a projectile in flight.
type Bullet struct {
	Owner core.Side
	X, Y  int
	W, H  int
	Dir   Direction
}

// Box returns the bullet's collision box.
func (b Bullet) Box() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// HitEvent reports that a bullet struck the ship of Target.
type HitEvent struct {
	Target core.Side
}
