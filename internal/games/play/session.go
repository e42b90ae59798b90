// Package play holds the plumbing every mindflex game shares: mounting a
// round machine, the common controls and the frame around the board.
package play

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/registry"
)

// Session wires a game's rules to a Machine and implements the parts of
// registry.Game that do not depend on the puzzle. Games embed it.
type Session[P any] struct {
	info registry.GameInfo
	deps registry.Deps
	tick time.Duration

	// M is the running machine; nil until the first Mount.
	M *engine.Machine[P]
}

// NewSession creates an unmounted session.
func NewSession[P any](info registry.GameInfo, deps registry.Deps) Session[P] {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return Session[P]{info: info, deps: deps}
}

// ID returns the game id.
func (s *Session[P]) ID() string { return s.info.ID }

// Title returns the display name.
func (s *Session[P]) Title() string { return s.info.Title }

// Deps returns the construction handles.
func (s *Session[P]) Deps() registry.Deps { return s.deps }

// Logger returns the game logger.
func (s *Session[P]) Logger() *log.Logger { return s.deps.Logger }

// Mount replaces the current machine with a fresh one for rules.
func (s *Session[P]) Mount(cfg core.RuntimeConfig, rules engine.Rules[P], opts ...engine.Option) {
	if s.M != nil {
		s.M.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.tick = cfg.TickDuration()

	base := []engine.Option{
		engine.WithName(s.info.ID),
		engine.WithSeed(seed),
		engine.WithLogger(s.deps.Logger),
	}
	s.M = engine.New(s.deps.Tally, rules, append(base, opts...)...)
	s.deps.Logger.Debug("mounted", "game", s.info.ID, "seed", seed, "level", s.M.Level())
}

// Control handles the actions every game shares. It returns true when the
// action was consumed.
func (s *Session[P]) Control(a core.Action) bool {
	switch a {
	case core.ActionRestart:
		s.M.Restart()
		return true
	case core.ActionNext:
		s.M.Advance()
		return true
	case core.ActionConfirm:
		switch s.M.Phase() {
		case engine.PhaseIdle:
			return s.M.Start()
		case engine.PhaseComplete:
			s.M.Advance()
			return true
		}
	}
	return false
}

// Tick advances the machine by one simulation step.
func (s *Session[P]) Tick() {
	s.M.Tick(s.tick)
}

// State reports the machine state to the platform.
func (s *Session[P]) State() core.GameState {
	if s.M == nil {
		return core.GameState{}
	}
	phase := s.M.Phase()
	return core.GameState{
		Phase:    phase.String(),
		Level:    s.M.Level(),
		Round:    s.M.Round(),
		Points:   s.M.Points(),
		GameOver: phase == engine.PhaseGameOver,
		Finished: s.M.Finished(),
		Complete: phase == engine.PhaseComplete,
	}
}

// Close cancels the machine's timers.
func (s *Session[P]) Close() {
	if s.M != nil {
		s.M.Close()
	}
}
