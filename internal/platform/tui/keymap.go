package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacefight/internal/core"
)

// SideKeys are the bindings for one player.
type SideKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
}

// move returns the binding for m.
func (k SideKeys) move(m core.Move) key.Binding {
	switch m {
	case core.MoveUp:
		return k.Up
	case core.MoveDown:
		return k.Down
	case core.MoveLeft:
		return k.Left
	default:
		return k.Right
	}
}

// DuelKeyMap holds both players' bindings and the global quit keys.
type DuelKeyMap struct {
	Sides [2]SideKeys
	Quit  key.Binding
}

// DefaultDuelKeyMap returns WASD + space for yellow and arrows + enter for red.
func DefaultDuelKeyMap() DuelKeyMap {
	return DuelKeyMap{
		Sides: [2]SideKeys{
			core.SideLeft: {
				Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "up")),
				Down:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down")),
				Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
				Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),
				Fire:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "yellow fire")),
			},
			core.SideRight: {
				Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
				Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
				Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
				Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
				Fire:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "red fire")),
			},
		},
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k DuelKeyMap) ShortHelp() []key.Binding {
	left, right := k.Sides[core.SideLeft], k.Sides[core.SideRight]
	return []key.Binding{
		wasdHelp(left), left.Fire,
		arrowsHelp(right), right.Fire,
		k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k DuelKeyMap) FullHelp() [][]key.Binding {
	left, right := k.Sides[core.SideLeft], k.Sides[core.SideRight]
	return [][]key.Binding{
		{left.Up, left.Down, left.Left, left.Right, left.Fire},
		{right.Up, right.Down, right.Left, right.Right, right.Fire},
		{k.Quit},
	}
}

func wasdHelp(k SideKeys) key.Binding {
	return key.NewBinding(key.WithKeys(keysOf(k)...), key.WithHelp("wasd", "yellow move"))
}

func arrowsHelp(k SideKeys) key.Binding {
	return key.NewBinding(key.WithKeys(keysOf(k)...), key.WithHelp("arrows", "red move"))
}

func keysOf(k SideKeys) []string {
	var keys []string
	for _, b := range []key.Binding{k.Up, k.Down, k.Left, k.Right} {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

// KeyEvent is a key press decoded against a DuelKeyMap.
type KeyEvent struct {
	Side core.Side
	Move core.Move
	Fire bool
	Quit bool
	OK   bool // False when the key is not bound
}

// Decode maps a key message to the player action it is bound to.
func (k DuelKeyMap) Decode(msg tea.KeyMsg) KeyEvent {
	if key.Matches(msg, k.Quit) {
		return KeyEvent{Quit: true, OK: true}
	}

	for _, side := range core.Sides {
		sk := k.Sides[side]
		if key.Matches(msg, sk.Fire) {
			return KeyEvent{Side: side, Fire: true, OK: true}
		}
		for m := core.MoveUp; m <= core.MoveRight; m++ {
			if key.Matches(msg, sk.move(m)) {
				return KeyEvent{Side: side, Move: m, OK: true}
			}
		}
	}
	return KeyEvent{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
