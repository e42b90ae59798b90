package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/logging"
	"github.com/vovakirdan/mindflex/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MindFlex SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session: picker, games and score are
never shared. Results from every session go to the same database.

Host key handling:
  - --host-key (or MINDFLEX_HOST_KEY) names the key file
  - Relative paths live under your home directory
  - The key is generated on first start

Examples:
  mindflex serve                           # Listen on :2323
  mindflex serve --ssh :2222               # Listen on port 2222
  mindflex serve --host-key ./my_host_key  # Use specific host key
  mindflex serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default :2323)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default ~/.ssh/mindflex_ed25519)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting (default 30m)")
}

func runServe(cmd *cobra.Command, _ []string) {
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Stderr(level)

	cfg := tui.SSHServerConfig{
		Address:     settings.SSHAddr,
		HostKeyPath: settings.HostKey,
		DBPath:      settings.DBPath,
		IdleTimeout: settings.IdleTimeout,
		TickRate:    settings.TickRate,
		Preset:      config.ParsePreset(flagDifficulty),
		ConfigPath:  flagConfig,
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting MindFlex SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
