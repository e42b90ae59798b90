// Package tui runs mindflex in a terminal with Bubble Tea: the game
// picker, the game host, the results board and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mindflex/internal/core"
)

// TickMsg advances the mounted game by one simulation step. Gen ties the
// tick to the game model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules the next TickMsg for gen at the configured rate.
func tickCmd(cfg core.RuntimeConfig, gen int) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
