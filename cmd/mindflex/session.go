package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/logging"
	"github.com/vovakirdan/mindflex/internal/platform/tui"
	"github.com/vovakirdan/mindflex/internal/storage"
)

// runSession runs a local TUI session, optionally straight into a game.
func runSession(startGame string) error {
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.ForTUI(settings.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	// Results are optional: the games still work without a database.
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results disabled", "db", settings.DBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(tui.SessionOptions{
		Store: store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: settings.TickRate,
			Seed:     flagSeed,
		},
		Logger:     logger,
		Preset:     config.ParsePreset(flagDifficulty),
		ConfigPath: flagConfig,
		StartGame:  startGame,
	})
}
