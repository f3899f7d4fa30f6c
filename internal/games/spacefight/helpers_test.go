package spacefight

import (
	"testing"

	"github.com/vovakirdan/spacefight/internal/config"
	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/registry"
)

// duelLayout returns the classic geometry with custom spawn points.
func duelLayout(left, right registry.Point) registry.Layout {
	l, err := registry.Get(registry.DefaultArena)
	if err != nil {
		panic(err)
	}
	l.Spawn = [2]registry.Point{left, right}
	return l
}

// faceOffLayout puts the ships one bullet step apart across the divider.
func faceOffLayout() registry.Layout {
	return duelLayout(registry.Point{X: 385, Y: 300}, registry.Point{X: 456, Y: 300})
}

func newTestGame(t *testing.T, layout registry.Layout, opts ...Option) *Game {
	t.Helper()
	g, err := New(config.DefaultSpacefightConfig(), layout, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func fireFrame(sides ...core.Side) core.InputFrame {
	in := core.NewInputFrame()
	for _, s := range sides {
		in.Fire(s)
	}
	return in
}

type recordingSound struct {
	played []core.SoundEffect
}

func (r *recordingSound) Play(e core.SoundEffect) {
	r.played = append(r.played, e)
}

func (r *recordingSound) count(e core.SoundEffect) int {
	n := 0
	for _, p := range r.played {
		if p == e {
			n++
		}
	}
	return n
}

type recordingRenderer struct {
	frames  []Frame
	banners []string
}

func (r *recordingRenderer) DrawFrame(f Frame) {
	r.frames = append(r.frames, f)
}

func (r *recordingRenderer) DrawWinnerBanner(text string) {
	r.banners = append(r.banners, text)
}
