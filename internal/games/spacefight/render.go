package spacefight

import (
	"fmt"

	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/registry"
)

// Visual characters for rendering
const (
	LeftShipChar  = '▶'
	RightShipChar = '◀'
	BulletChar    = '━'
	DividerChar   = '┃'
	StarChar      = '·'
)

// Frame is everything the renderer needs to draw one tick.
type Frame struct {
	Layout  registry.Layout
	Ships   [2]Ship
	Bullets [2][]Bullet
}

// Renderer draws frames and the winner banner.
type Renderer interface {
	DrawFrame(f Frame)
	DrawWinnerBanner(text string)
}

// WinnerText returns the banner text for winner.
func WinnerText(winner core.Side) string {
	return fmt.Sprintf("%s Player Wins!", winner)
}

// HealthText returns the HUD health line for ship.
func HealthText(ship Ship) string {
	return fmt.Sprintf("%s Spaceship Health: %d", ship.Side, ship.Health)
}

// sideColors maps each side to its ship and bullet colour.
var sideColors = [2]core.Color{core.ColorBrightYellow, core.ColorBrightRed}

// ScreenRenderer draws onto a core.Screen, scaling play-field units to cells.
type ScreenRenderer struct {
	dst    *core.Screen
	fieldW int
	fieldH int
}

// NewScreenRenderer creates a renderer for a field of fieldW x fieldH units.
func NewScreenRenderer(dst *core.Screen, fieldW, fieldH int) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, fieldW: fieldW, fieldH: fieldH}
}

// cellRect converts a play-field rectangle to screen cells.
// Anything with a non-zero size covers at least one cell.
func (r *ScreenRenderer) cellRect(box core.Rect) core.Rect {
	x0 := box.X * r.dst.Width() / r.fieldW
	y0 := box.Y * r.dst.Height() / r.fieldH
	x1 := box.Right() * r.dst.Width() / r.fieldW
	y1 := box.Bottom() * r.dst.Height() / r.fieldH
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// DrawFrame draws the background, divider, health text, ships and bullets.
func (r *ScreenRenderer) DrawFrame(f Frame) {
	r.dst.Clear()
	r.drawStars()

	div := r.cellRect(f.Layout.Divider())
	for x := div.X; x < div.Right(); x++ {
		r.dst.DrawVLine(x, 0, r.dst.Height(), DividerChar, core.ColorDarkGray)
	}

	for _, side := range core.Sides {
		ship := f.Ships[side]
		glyph := LeftShipChar
		if side == core.SideRight {
			glyph = RightShipChar
		}
		r.dst.DrawRect(r.cellRect(ship.Box()), glyph, sideColors[side])

		for _, b := range f.Bullets[side] {
			r.dst.DrawRect(r.cellRect(b.Box()), BulletChar, sideColors[side])
		}
	}

	left := HealthText(f.Ships[core.SideLeft])
	right := HealthText(f.Ships[core.SideRight])
	r.dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)
	r.dst.DrawTextColored(r.dst.Width()-len(right)-1, 0, right, core.ColorBrightWhite)
}

// DrawWinnerBanner draws text in a box in the middle of the screen.
func (r *ScreenRenderer) DrawWinnerBanner(text string) {
	cx, cy := core.NewRect(0, 0, r.dst.Width(), r.dst.Height()).Center()

	boxW := len(text) + 6
	boxH := 5
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	r.dst.DrawRect(box, ' ', core.ColorDefault)
	r.dst.DrawBox(box, core.ColorBrightWhite)
	r.dst.DrawTextCentered(box.Y+boxH/2, text, core.ColorBrightWhite)
}

// drawStars scatters a fixed star pattern as the background.
func (r *ScreenRenderer) drawStars() {
	for y := 1; y < r.dst.Height(); y++ {
		for x := (y * 7) % 11; x < r.dst.Width(); x += 23 {
			r.dst.SetWithColor(x, y, StarChar, core.ColorGray)
		}
	}
}
