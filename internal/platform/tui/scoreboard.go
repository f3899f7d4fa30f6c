package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacefight/internal/core"
)

// Scoreboard counts match wins for the current session.
// Nothing is stored; a new process starts from zero.
type Scoreboard struct {
	wins  [2]int
	table table.Model
}

// NewScoreboard creates an empty tally.
func NewScoreboard() *Scoreboard {
	columns := []table.Column{
		{Title: "Yellow", Width: 8},
		{Title: "Red", Width: 8},
		{Title: "Matches", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	t.SetHeight(lipgloss.Height(s.Header.Render("Yellow")) + 1) // Header plus one row

	sb := &Scoreboard{table: t}
	sb.updateRows()
	return sb
}

// Record adds a win for side.
func (s *Scoreboard) Record(winner core.Side) {
	s.wins[winner]++
	s.updateRows()
}

// Wins returns the number of matches side has won.
func (s *Scoreboard) Wins(side core.Side) int {
	return s.wins[side]
}

// Matches returns the number of finished matches.
func (s *Scoreboard) Matches() int {
	return s.wins[core.SideLeft] + s.wins[core.SideRight]
}

func (s *Scoreboard) updateRows() {
	s.table.SetRows([]table.Row{{
		strconv.Itoa(s.wins[core.SideLeft]),
		strconv.Itoa(s.wins[core.SideRight]),
		strconv.Itoa(s.Matches()),
	}})
}

// View renders the tally table in a rounded box.
func (s *Scoreboard) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(s.table.View())
}
