package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/spacefight/internal/audio"
	"github.com/vovakirdan/spacefight/internal/config"
	"github.com/vovakirdan/spacefight/internal/core"
	"github.com/vovakirdan/spacefight/internal/games/spacefight"
	"github.com/vovakirdan/spacefight/internal/registry"
)

// duelEnv holds everything built from flags before a duel starts.
type duelEnv struct {
	rules   config.SpacefightConfig
	logger  *log.Logger
	player  *audio.Player // nil when muted or no audio device
	logFile *os.File
}

// newDuelEnv loads rules, opens the log and, unless muted, the audio device.
func newDuelEnv() (*duelEnv, error) {
	rules, err := config.LoadSpacefight(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagArena != "" {
		if !registry.Exists(flagArena) {
			return nil, fmt.Errorf("unknown arena %q (run 'spacefight arenas')", flagArena)
		}
		rules.Arena = flagArena
	}

	env := &duelEnv{rules: rules}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		env.logFile = f
		out = f
	}
	env.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacefight",
	})

	if rules.Audio.Enabled && !flagMute {
		p := audio.NewPlayer(rules.Audio.Volume, env.logger)
		if err := p.Init(); err != nil {
			env.logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			env.player = p
		}
	}

	return env, nil
}

// newGame builds a duel in the named arena.
func (env *duelEnv) newGame(arena string) (*spacefight.Game, error) {
	layout, err := registry.Get(arena)
	if err != nil {
		return nil, err
	}

	var opts []spacefight.Option
	if env.player != nil {
		opts = append(opts, spacefight.WithSound(env.player))
	}
	return spacefight.New(env.rules, layout, opts...)
}

// Close releases the audio device and log file.
func (env *duelEnv) Close() {
	if env.player != nil {
		env.player.Close()
	}
	if env.logFile != nil {
		env.logFile.Close()
	}
}

// terminalConfig reads the terminal size, falling back to the defaults.
// The tick rate comes from --fps; zero leaves it to the rules file.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
