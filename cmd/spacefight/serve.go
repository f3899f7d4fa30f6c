package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefight/internal/config"
	"github.com/vovakirdan/spacefight/internal/platform/tui"
	"github.com/vovakirdan/spacefight/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host duels over SSH",
	Long: `Start an SSH server that hosts a duel for each connection.

Both players share the connecting terminal, exactly as in 'spacefight play'.
Sessions are independent; nothing is shared between connections and no
sound is played on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacefight/host_key

Examples:
  spacefight serve                           # Listen on :23234
  spacefight serve --ssh :2222               # Listen on port 2222
  spacefight serve --host-key ./my_host_key  # Use specific host key

Players can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	rules, err := config.LoadSpacefight(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagArena != "" {
		if !registry.Exists(flagArena) {
			fmt.Fprintf(os.Stderr, "Error: unknown arena %q\n", flagArena)
			os.Exit(1)
		}
		rules.Arena = flagArena
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacefight-ssh",
	})

	cfg := tui.DefaultSSHServerConfig()
	cfg.Rules = rules
	cfg.TickRate = flagFPS
	cfg.HostKeyPath = flagHostKey
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting spacefight SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
