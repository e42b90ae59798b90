// mindflex is a terminal arcade of short cognitive-training games.
//
// Usage:
//
//	mindflex list              - List available games
//	mindflex play <game>       - Play a game
//	mindflex menu              - Start menu to pick games interactively
//	mindflex serve             - Start SSH server for remote play
//	mindflex results [game]    - Show stored results
//
// Global flags override the MINDFLEX_* environment (a .env file in the
// working directory is loaded first):
//
//	--db <path>          - Results database (MINDFLEX_DB)
//	--tick-rate <rate>   - Simulation ticks per second (MINDFLEX_TICK_RATE)
//	--seed <value>       - RNG seed for reproducible puzzles
//	--log-level <level>  - debug, info, warn, error (MINDFLEX_LOG_LEVEL)
//	--log-file <path>    - Log file for the TUI (MINDFLEX_LOG_FILE)
//	--difficulty <name>  - easy, normal, hard, fixed
//	--config <path>      - Custom difficulty ladder YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflex/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/mindflex/internal/games/cardflip"
	_ "github.com/vovakirdan/mindflex/internal/games/hue"
	_ "github.com/vovakirdan/mindflex/internal/games/impulse"
	_ "github.com/vovakirdan/mindflex/internal/games/queens"
	_ "github.com/vovakirdan/mindflex/internal/games/schulte"
	_ "github.com/vovakirdan/mindflex/internal/games/sequence"
	_ "github.com/vovakirdan/mindflex/internal/games/stroop"
	_ "github.com/vovakirdan/mindflex/internal/games/symbolic"
	_ "github.com/vovakirdan/mindflex/internal/games/toggle"
)

var (
	// Global flags
	flagDBPath     string
	flagTickRate   int
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
	flagDifficulty string
	flagConfig     string

	// settings is the environment overlaid with explicitly set flags.
	settings config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mindflex",
	Short: "MindFlex - brain training games in your terminal",
	Long: `MindFlex is a collection of short cognitive-training games that run
in your terminal or over SSH. Every game feeds one shared score.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  results  - View stored results

Examples:
  mindflex list
  mindflex play schulte
  mindflex menu --difficulty hard
  mindflex serve --ssh :2222
  mindflex results sequence`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default ~/.mindflex/results.db)")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 0, "Simulation ticks per second (default 30)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write TUI logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom difficulty YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}

// loadSettings reads the environment and applies flags the user set.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("tick-rate") {
		if flagTickRate <= 0 {
			return fmt.Errorf("--tick-rate must be positive, got %d", flagTickRate)
		}
		cfg.TickRate = flagTickRate
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	settings = cfg
	return nil
}
