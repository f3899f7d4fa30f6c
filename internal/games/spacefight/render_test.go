package spacefight

import (
	"strings"
	"testing"

	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/registry"
)

func TestText(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{WinnerText(core.SideLeft), "Yellow Player Wins!"},
		{WinnerText(core.SideRight), "Red Player Wins!"},
		{HealthText(Ship{Side: core.SideLeft, Health: 10}), "Yellow Spaceship Health: 10"},
		{HealthText(Ship{Side: core.SideRight, Health: 3}), "Red Spaceship Health: 3"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("text = %q, expected %q", tt.got, tt.want)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	// 90x50 cells over a 900x500 field is ten units per cell.
	g := newTestGame(t, duelLayout(registry.Point{X: 100, Y: 300}, registry.Point{X: 700, Y: 300}))
	g.Step(fireFrame(core.SideLeft))

	screen := core.NewScreen(90, 50)
	g.Render(screen)

	tests := []struct {
		name  string
		x, y  int
		want  rune
		color core.Color
	}{
		{"left ship", 12, 32, LeftShipChar, core.ColorBrightYellow},
		{"right ship", 72, 32, RightShipChar, core.ColorBrightRed},
		{"divider", 44, 20, DividerChar, core.ColorDarkGray},
		{"left bullet", 15, 31, BulletChar, core.ColorBrightYellow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := screen.GetCell(tt.x, tt.y)
			if cell.Rune != tt.want {
				t.Errorf("cell(%d,%d) = %q, expected %q", tt.x, tt.y, cell.Rune, tt.want)
			}
			if cell.Color != tt.color {
				t.Errorf("cell(%d,%d) color = %v, expected %v", tt.x, tt.y, cell.Color, tt.color)
			}
		})
	}

	top := screen.Row(0)
	for _, want := range []string{"Yellow Spaceship Health: 10", "Red Spaceship Health: 10"} {
		if !strings.Contains(top, want) {
			t.Errorf("top row %q does not contain %q", top, want)
		}
	}
}

func TestRenderWinnerBanner(t *testing.T) {
	g := newTestGame(t, faceOffLayout())
	for i := 0; i < 11; i++ {
		g.Step(fireFrame(core.SideLeft))
	}

	screen := core.NewScreen(90, 50)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Yellow Player Wins!") {
		t.Error("winner banner not drawn")
	}
}
