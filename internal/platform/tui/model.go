package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/games/spacefight"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs duels back to back.
type Model struct {
	game     *spacefight.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     DuelKeyMap
	help     help.Model
	input    *InputTracker
	tally    *Scoreboard
	logger   *log.Logger
	banner   bool // Winner banner is showing; the simulation is paused
	quitting bool
}

// NewModel creates a model for game. A zero TickRate in cfg falls back to
// the game's configured rate.
func NewModel(game *spacefight.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	rules := game.Rules()
	if cfg.TickRate <= 0 {
		cfg.TickRate = rules.Timing.TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultDuelKeyMap(),
		help:   h,
		input:  NewInputTracker(rules.Input.HoldTicks),
		tally:  NewScoreboard(),
		logger: logger,
	}
}

// Init names the terminal window after the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logStart()
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case bannerDoneMsg:
		return m.handleRestart()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.Decode(msg)
	if ev.Quit {
		// Quit right away, even during the banner hold. A blocking pause
		// would ignore the key until the next match started.
		m.input.Apply(ev)
		m.quitting = true
		return m, tea.Quit
	}

	if !m.banner {
		m.input.Apply(ev)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.banner || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.input.Frame())
	if !result.State.Ended {
		return m, tickCmd(m.config.TickRate)
	}

	m.banner = true
	m.input.Clear()
	m.tally.Record(result.State.Winner)
	m.logger.Info("match ended",
		"winner", result.State.Winner,
		"ticks", result.State.Tick,
		"yellow", result.State.Health[core.SideLeft],
		"red", result.State.Health[core.SideRight],
	)

	return m, bannerCmd(m.game.Rules().Timing.BannerPause)
}

// handleRestart starts a fresh match after the banner hold.
func (m Model) handleRestart() (tea.Model, tea.Cmd) {
	if !m.banner {
		return m, nil
	}

	m.game.Reset()
	m.banner = false
	m.logStart()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logStart() {
	m.logger.Info("match started",
		"arena", m.game.Layout().Name,
		"match", m.tally.Matches()+1,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := footerStyle.Render(m.help.View(m.keys))
	if m.banner {
		footer = lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, m.tally.View())
	}

	h := core.Max(1, m.config.ScreenH-lipgloss.Height(footer))
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// Banner returns true while the winner banner is showing.
func (m Model) Banner() bool {
	return m.banner
}

// Tally returns the session's win counts.
func (m Model) Tally() *Scoreboard {
	return m.tally
}

// Run starts the Bubble Tea program for game and blocks until the players quit.
func Run(game *spacefight.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.logger.Info("session ended",
		"matches", model.tally.Matches(),
		"yellow", model.tally.Wins(core.SideLeft),
		"red", model.tally.Wins(core.SideRight),
	)
	return err
}

// IsQuitting returns true once a quit key was pressed.
func (m Model) IsQuitting() bool {
	return m.quitting
}
