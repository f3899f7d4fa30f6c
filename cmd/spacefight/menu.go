package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefight/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick an arena, then duel",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick an arena, Enter to start the duel.
Quitting a duel returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select arena
  Q/Esc        - Quit

Examples:
  spacefight menu
  spacefight menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	env, err := newDuelEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	cfg := terminalConfig()
	current := env.rules.Arena

	for {
		result, err := tui.RunMenu(cfg, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}
		current = result.Arena

		game, err := env.newGame(result.Arena)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, cfg, env.logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
