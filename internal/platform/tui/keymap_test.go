package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacefight/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDecode(t *testing.T) {
	keys := DefaultDuelKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{"w", runeKey('w'), KeyEvent{Side: core.SideLeft, Move: core.MoveUp, OK: true}},
		{"a", runeKey('a'), KeyEvent{Side: core.SideLeft, Move: core.MoveLeft, OK: true}},
		{"s", runeKey('s'), KeyEvent{Side: core.SideLeft, Move: core.MoveDown, OK: true}},
		{"d", runeKey('d'), KeyEvent{Side: core.SideLeft, Move: core.MoveRight, OK: true}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyEvent{Side: core.SideLeft, Fire: true, OK: true}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, KeyEvent{Side: core.SideRight, Move: core.MoveUp, OK: true}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, KeyEvent{Side: core.SideRight, Move: core.MoveDown, OK: true}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, KeyEvent{Side: core.SideRight, Move: core.MoveLeft, OK: true}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, KeyEvent{Side: core.SideRight, Move: core.MoveRight, OK: true}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyEvent{Side: core.SideRight, Fire: true, OK: true}},
		{"q", runeKey('q'), KeyEvent{Quit: true, OK: true}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyEvent{Quit: true, OK: true}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyEvent{Quit: true, OK: true}},
		{"unbound", runeKey('x'), KeyEvent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Decode(tt.msg); got != tt.want {
				t.Errorf("Decode(%q) = %+v, expected %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpCoversEveryBinding(t *testing.T) {
	keys := DefaultDuelKeyMap()
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 11 {
		t.Errorf("FullHelp bindings = %d, expected 11", n)
	}
	if len(keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp bindings = %d, expected 5", len(keys.ShortHelp()))
	}
}
