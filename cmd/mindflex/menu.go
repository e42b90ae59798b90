package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start MindFlex with a game picker menu",
	Long: `Start MindFlex in interactive menu mode.

Use arrow keys or j/k to navigate, Enter or 1-9 to pick a game.
B or Esc inside a game returns here; the score header carries over.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  1-9          - Select game by number
  Tab          - Results board
  Q            - Quit

Examples:
  mindflex menu
  mindflex menu --tick-rate 60
  mindflex menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := runSession(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
