package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacefight/internal/core"
)

func TestMenuSelect(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	m := NewMenuModel(cfg, "classic")

	if len(m.items) < 2 {
		t.Fatalf("menu has %d arenas, expected at least 2", len(m.items))
	}
	if m.items[m.cursor].Name != "classic" {
		t.Errorf("cursor on %q, expected classic", m.items[m.cursor].Name)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil {
		t.Fatal("no arena selected")
	}
	if m.Selected().Name != "open" {
		t.Errorf("selected %q, expected open", m.Selected().Name)
	}
	if cmd == nil {
		t.Error("select should end the menu program")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "")
	next, _ := m.Update(runeKey('q'))
	m = next.(MenuModel)

	if !m.IsQuitting() {
		t.Error("menu not quitting")
	}
	if m.Selected() != nil {
		t.Error("quit should not select an arena")
	}
}
