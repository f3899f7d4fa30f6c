package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefight/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a duel",
	Long: `Start a duel in the configured arena.

Controls:
  W/A/S/D      - Move yellow ship
  Space        - Yellow fires
  Arrow keys   - Move red ship
  Enter        - Red fires
  Q/Esc/Ctrl+C - Quit

Each side may have at most 3 bullets in flight. When a ship is destroyed
the winner is shown for 5 seconds and a new match begins.

Examples:
  spacefight play
  spacefight play --arena open
  spacefight play --fps 30 --mute
  spacefight play --config ./my-rules.yaml --log-file duel.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	env, err := newDuelEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := env.newGame(env.rules.Arena)
	if err != nil {
		env.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, terminalConfig(), env.logger)
	env.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
