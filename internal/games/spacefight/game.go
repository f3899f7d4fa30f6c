// Package spacefight implements a two-player spaceship duel.
// The yellow ship (left) and the red ship (right) move within their halves of
// the field and fire at each other; the first ship to lose all its health
// loses the match.
package spacefight

import (
	"fmt"

	"github.com/vovakirdan/spacefight/internal/config"
	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/registry"
)

// SoundPlayer plays sound effects without blocking the simulation.
type SoundPlayer interface {
	Play(effect core.SoundEffect)
}

type silentPlayer struct{}

func (silentPlayer) Play(core.SoundEffect) {}

// Option configures a Game.
type Option func(*Game)

// WithSound routes fire and hit effects to p.
func WithSound(p SoundPlayer) Option {
	return func(g *Game) {
		if p != nil {
			g.sound = p
		}
	}
}

// Game runs the duel simulation one fixed tick at a time.
type Game struct {
	rules  config.SpacefightConfig
	layout registry.Layout
	sound  SoundPlayer

	match     *Match
	mags      [2]*Magazine
	tickCount int
}

// New creates a game with the given rules and arena layout.
func New(rules config.SpacefightConfig, layout registry.Layout, opts ...Option) (*Game, error) {
	if err := layout.Validate(rules.Ship.Width, rules.Ship.Height); err != nil {
		return nil, fmt.Errorf("spacefight: %w", err)
	}

	g := &Game{
		rules:  rules,
		layout: layout,
		sound:  silentPlayer{},
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, side := range core.Sides {
		g.mags[side] = NewMagazine(side,
			rules.Bullet.Capacity,
			rules.Bullet.Velocity,
			rules.Bullet.Width,
			rules.Bullet.Height,
			layout.FieldW,
		)
	}
	g.Reset()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spacefight"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Spaceship Fight!"
}

// Layout returns the arena the game is played in.
func (g *Game) Layout() registry.Layout {
	return g.layout
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() config.SpacefightConfig {
	return g.rules
}

// Reset starts a fresh match: ships at spawn, full health, no bullets.
func (g *Game) Reset() {
	g.match = NewMatch(g.layout, g.rules.Ship.Width, g.rules.Ship.Height, g.rules.Ship.InitialHealth)
	for _, mag := range g.mags {
		mag.Reset()
	}
	g.tickCount = 0
}

// Step advances the simulation by one tick.
// Once the match has ended Step changes nothing until Reset. A frame carrying
// a close request is not simulated either.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.match.Ended() || in.Close {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	for _, side := range core.Sides {
		Move(g.match.Ship(side), in, g.layout.Bounds(side), g.rules.Ship.Velocity)
	}

	var hits []HitEvent
	for _, side := range core.Sides {
		mag := g.mags[side]
		mag.Advance()
		hits = append(hits, Resolve(mag, *g.match.Ship(side.Opponent()))...)
		mag.PruneOutOfBounds()
	}

	shots := 0
	for _, side := range core.Sides {
		if !in.Fired(side) {
			continue
		}
		if _, ok := g.mags[side].TryFire(g.match.Ship(side).Box()); ok {
			g.sound.Play(core.SoundFire)
			shots++
		}
	}

	applied := g.match.Apply(hits)
	for range applied {
		g.sound.Play(core.SoundHit)
	}

	return core.StepResult{
		State: g.State(),
		Hits:  len(applied),
		Shots: shots,
	}
}

// Frame returns a snapshot of everything visible this tick.
func (g *Game) Frame() Frame {
	f := Frame{
		Layout: g.layout,
		Ships:  g.match.Ships(),
	}
	for _, side := range core.Sides {
		f.Bullets[side] = g.mags[side].Bullets()
	}
	return f
}

// Draw sends the current frame to r, followed by the winner banner once the
// match has ended.
func (g *Game) Draw(r Renderer) {
	r.DrawFrame(g.Frame())
	if g.match.Ended() {
		r.DrawWinnerBanner(WinnerText(g.match.Winner()))
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Draw(NewScreenRenderer(dst, g.layout.FieldW, g.layout.FieldH))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	ships := g.match.Ships()
	return core.GameState{
		Tick:   g.tickCount,
		Health: [2]int{ships[core.SideLeft].Health, ships[core.SideRight].Health},
		Ended:  g.match.Ended(),
		Winner: g.match.Winner(),
	}
}

// Match exposes the current match for inspection.
func (g *Game) Match() *Match {
	return g.match
}

// Magazine returns the side's bullets.
func (g *Game) Magazine(side core.Side) *Magazine {
	return g.mags[side]
}
