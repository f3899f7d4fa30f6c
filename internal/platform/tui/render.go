package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacefight/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorDarkGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
}

// hudStyle sits under the top row, where the health text is drawn.
var hudStyle = lipgloss.NewStyle().Background(lipgloss.Color("235"))

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// The top row is the HUD and gets a shaded background.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		base := lipgloss.NewStyle()
		if y == 0 {
			base = hudStyle
		}
		rows[y] = renderRow(s, y, base)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one row, one span per run of same-coloured cells.
func renderRow(s *core.Screen, y int, base lipgloss.Style) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); {
		c := s.GetCell(x, y).Color
		var run []rune
		for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
			run = append(run, s.GetCell(x, y).Rune)
		}
		sb.WriteString(styleFor(c).Inherit(base).Render(string(run)))
	}
	return sb.String()
}
