package spacefight

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/registry"
)

var classicLeftBound = core.NewRect(0, 55, 445, 430)

func TestMoveSingleKeys(t *testing.T) {
	tests := []struct {
		name  string
		move  core.Move
		wantX int
		wantY int
	}{
		{"up", core.MoveUp, 100, 295},
		{"down", core.MoveDown, 100, 305},
		{"left", core.MoveLeft, 95, 300},
		{"right", core.MoveRight, 105, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := Ship{Side: core.SideLeft, X: 100, Y: 300, W: 55, H: 40}
			in := core.NewInputFrame()
			in.Hold(core.SideLeft, tt.move)

			Move(&ship, in, classicLeftBound, 5)

			if ship.X != tt.wantX || ship.Y != tt.wantY {
				t.Errorf("position = (%d,%d), expected (%d,%d)", ship.X, ship.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveIgnoresOtherSide(t *testing.T) {
	ship := Ship{Side: core.SideLeft, X: 100, Y: 300, W: 55, H: 40}
	in := core.NewInputFrame()
	in.Hold(core.SideRight, core.MoveUp)
	in.Hold(core.SideRight, core.MoveLeft)

	Move(&ship, in, classicLeftBound, 5)

	if ship.X != 100 || ship.Y != 300 {
		t.Errorf("position = (%d,%d), expected (100,300)", ship.X, ship.Y)
	}
}

func TestMoveOppositeKeysCancel(t *testing.T) {
	ship := Ship{Side: core.SideLeft, X: 100, Y: 300, W: 55, H: 40}
	in := core.NewInputFrame()
	in.Hold(core.SideLeft, core.MoveLeft)
	in.Hold(core.SideLeft, core.MoveRight)

	Move(&ship, in, classicLeftBound, 5)

	if ship.X != 100 {
		t.Errorf("X = %d, expected 100", ship.X)
	}
}

func TestMoveEdgeRejectsOutwardKeepsOrthogonal(t *testing.T) {
	tests := []struct {
		name    string
		start   Ship
		outward core.Move
		other   core.Move
		wantX   int
		wantY   int
	}{
		{
			name:    "left wall",
			start:   Ship{Side: core.SideLeft, X: 5, Y: 300, W: 55, H: 40},
			outward: core.MoveLeft,
			other:   core.MoveDown,
			wantX:   5,
			wantY:   305,
		},
		{
			name:    "divider",
			start:   Ship{Side: core.SideLeft, X: 385, Y: 300, W: 55, H: 40},
			outward: core.MoveRight,
			other:   core.MoveUp,
			wantX:   385,
			wantY:   295,
		},
		{
			name:    "health margin",
			start:   Ship{Side: core.SideLeft, X: 100, Y: 60, W: 55, H: 40},
			outward: core.MoveUp,
			other:   core.MoveRight,
			wantX:   105,
			wantY:   60,
		},
		{
			name:    "bottom",
			start:   Ship{Side: core.SideLeft, X: 100, Y: 440, W: 55, H: 40},
			outward: core.MoveDown,
			other:   core.MoveLeft,
			wantX:   95,
			wantY:   440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := tt.start
			in := core.NewInputFrame()
			in.Hold(core.SideLeft, tt.outward)
			in.Hold(core.SideLeft, tt.other)

			Move(&ship, in, classicLeftBound, 5)

			if ship.X != tt.wantX || ship.Y != tt.wantY {
				t.Errorf("position = (%d,%d), expected (%d,%d)", ship.X, ship.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveStaysWithinBounds(t *testing.T) {
	layout := duelLayout(registry.Point{X: 100, Y: 300}, registry.Point{X: 700, Y: 300})
	rng := rand.New(rand.NewSource(7))

	for _, side := range core.Sides {
		bound := layout.Bounds(side)
		ship := Ship{Side: side, X: layout.Spawn[side].X, Y: layout.Spawn[side].Y, W: 55, H: 40}

		for i := 0; i < 5000; i++ {
			in := core.NewInputFrame()
			for m := core.MoveUp; m <= core.MoveRight; m++ {
				if rng.Intn(2) == 0 {
					in.Hold(side, m)
				}
			}
			Move(&ship, in, bound, 5)

			if !core.Within(bound, ship.Box()) {
				t.Fatalf("%s ship left its bounds at step %d: %+v", side, i, ship.Box())
			}
		}
	}
}
