// Package tui runs the duel in a terminal with Bubble Tea.
// It owns tick pacing, key input, colour rendering, the arena picker and the
// SSH host; the simulation itself lives in the spacefight package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// bannerDoneMsg ends the winner banner hold and starts the next match.
type bannerDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// bannerCmd waits for d and then ends the banner hold.
func bannerCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bannerDoneMsg{}
	})
}
