package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflex/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. B or Esc returns to the game picker.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Start, select, confirm
  1-9          - Pick a pad cell or answer directly
  C            - Check solution (hue)
  X            - Clear marks (queens)
  M            - Switch mode (schulte, stroop, impulse)
  N            - Next level
  R            - Restart
  B/Esc        - Back to the picker
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the first level, progress to the last
  normal - Start a third of the way up the ladder
  hard   - Start near the top of the ladder
  fixed  - Stay on the starting level

Examples:
  mindflex play sequence
  mindflex play hue --difficulty hard
  mindflex play queens --difficulty fixed
  mindflex play stroop --config ./my-stroop.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mindflex list' to see available games.")
		os.Exit(1)
	}

	if err := runSession(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
