// Package shell hosts one game at a time on top of a shared score tally.
// It is the part of the arcade every front end shares: mount, step,
// record the result of a run, unmount.
package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/registry"
	"github.com/vovakirdan/mindflex/internal/score"
)

// AppTitle is shown in the header.
const AppTitle = "MindFlex"

// Result is the outcome of one run. It is reported once per run: when the
// run reaches a terminal state, or when a started run is left by restart
// or unmount.
type Result struct {
	GameID    string
	SessionID string
	Level     int
	Points    int // net points earned since the run started
	Finished  bool
	Left      bool // run abandoned before a terminal state
}

// ResultSink stores results. Errors are logged and never stop play.
type ResultSink interface {
	RecordResult(r Result) error
}

// Header is what the top bar shows.
type Header struct {
	Title string
	Total int
	Game  string // empty when nothing is mounted
}

// Shell owns the mounted game.
type Shell struct {
	tally      *score.Tally
	logger     *log.Logger
	sink       ResultSink
	sessionID  string
	preset     config.DifficultyPreset
	configPath string

	game     registry.Game
	last     core.GameState
	recorded bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger handed to games.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithSink records results of finished runs.
func WithSink(sink ResultSink) Option {
	return func(s *Shell) { s.sink = sink }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *Shell) { s.sessionID = id }
}

// WithPreset sets the difficulty preset for every mounted game.
func WithPreset(p config.DifficultyPreset) Option {
	return func(s *Shell) { s.preset = p }
}

// WithConfigPath points games at a custom YAML file.
func WithConfigPath(path string) Option {
	return func(s *Shell) { s.configPath = path }
}

// New creates a shell with nothing mounted. It panics on a nil tally.
func New(tally *score.Tally, opts ...Option) *Shell {
	if tally == nil {
		panic("shell: nil score tally")
	}
	s := &Shell{tally: tally}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.sessionID == "" {
		s.sessionID = uuid.NewString()
	}
	return s
}

// Mount replaces the current game with a fresh instance of id.
func (s *Shell) Mount(id string, cfg core.RuntimeConfig) error {
	g, err := registry.Create(id, registry.Deps{
		Tally:      s.tally,
		Logger:     s.logger.With("game", id),
		ConfigPath: s.configPath,
		Preset:     s.preset,
	})
	if err != nil {
		return fmt.Errorf("shell: mount: %w", err)
	}

	s.Unmount()
	g.Reset(cfg)
	s.game = g
	s.last = core.GameState{}
	s.recorded = false
	s.logger.Info("mounted", "game", id, "session", s.sessionID)
	return nil
}

// Unmount closes the current game, cancelling its timers. A started run
// that was never recorded is recorded as it stood at the last step.
func (s *Shell) Unmount() {
	if s.game == nil {
		return
	}
	s.flush()
	s.logger.Info("unmounted", "game", s.game.ID(), "session", s.sessionID)
	s.game.Close()
	s.game = nil
}

// Game returns the mounted game, or nil.
func (s *Shell) Game() registry.Game { return s.game }

// Mounted reports whether a game is mounted.
func (s *Shell) Mounted() bool { return s.game != nil }

// Tally returns the shared score.
func (s *Shell) Tally() *score.Tally { return s.tally }

// SessionID returns the id results are recorded under.
func (s *Shell) SessionID() string { return s.sessionID }

// Step forwards one input frame to the mounted game and records the
// result the first time the run reaches a terminal state.
func (s *Shell) Step(in core.InputFrame) core.StepResult {
	if s.game == nil {
		return core.StepResult{}
	}

	res := s.game.Step(in)
	st := res.State
	switch {
	case st.Terminal():
		if !s.recorded {
			s.recorded = true
			s.record(st)
		}
	case st.Round == 0:
		// restarted
		s.flush()
		s.recorded = false
	default:
		s.recorded = false
	}
	s.last = st
	return res
}

// flush records the last seen state of a started run with no result yet.
func (s *Shell) flush() {
	if s.recorded || s.last.Round == 0 {
		return
	}
	s.recorded = true
	s.record(s.last)
}

func (s *Shell) record(st core.GameState) {
	r := Result{
		GameID:    s.game.ID(),
		SessionID: s.sessionID,
		Level:     st.Level,
		Points:    st.Points,
		Finished:  st.Finished,
		Left:      !st.Terminal(),
	}
	s.logger.Info("run over", "game", r.GameID, "level", r.Level, "points", r.Points,
		"finished", r.Finished, "left", r.Left)

	if s.sink == nil {
		return
	}
	if err := s.sink.RecordResult(r); err != nil {
		s.logger.Error("record result", "game", r.GameID, "err", err)
	}
}

// Header returns the top bar data.
func (s *Shell) Header() Header {
	h := Header{Title: AppTitle, Total: s.tally.Total()}
	if s.game != nil {
		h.Game = s.game.Title()
	}
	return h
}
