// spacefight is a two-player spaceship duel played on one terminal.
//
// Usage:
//
//	spacefight play     - Start a duel in the configured arena
//	spacefight menu     - Pick an arena interactively, then duel
//	spacefight arenas   - List available arenas
//	spacefight serve    - Host duels over SSH
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate (default: from config, 60)
//	--config <path>     - Rules YAML file
//	--arena <name>      - Arena layout (default: from config, classic)
//	--mute              - Disable sound effects
//	--log-file <path>   - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagArena   string
	flagMute    bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacefight",
	Short: "Spaceship Fight - a two-player duel in your terminal",
	Long: `Spaceship Fight is a same-screen duel for two players.

The yellow ship flies on the left with W/A/S/D and fires with Space.
The red ship flies on the right with the arrow keys and fires with Enter.
Each ship has 10 health; the first to lose it all loses the match.

Available commands:
  play     - Start a duel
  menu     - Pick an arena, then duel
  arenas   - Show all available arenas
  serve    - Host duels over SSH

Examples:
  spacefight play
  spacefight play --arena open --mute
  spacefight menu --config ./my-rules.yaml
  spacefight serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagArena, "arena", "", "Arena layout (empty = use config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(arenasCmd)
	rootCmd.AddCommand(serveCmd)
}
