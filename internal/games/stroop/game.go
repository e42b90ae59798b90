package stroop

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/games/play"
	"github.com/vovakirdan/mindflex/internal/registry"
)

var info = registry.GameInfo{
	ID:          "stroop",
	Title:       "Stroop Test",
	Description: "Name the colour, not the word, against a 60 second clock",
}

type rules struct {
	cfg   config.StroopConfig
	mode  Mode
	clock engine.Token
}

func (r *rules) Generate(rng *rand.Rand, _ int, prev Stimulus) (Stimulus, error) {
	return Generate(rng, r.mode, r.cfg.DistractorRate, prev), nil
}

// Enter arms the session clock on the first round of a run.
func (r *rules) Enter(m *engine.Machine[Stimulus]) {
	if m.Round() == 1 {
		r.clock = m.SessionAfter(time.Duration(r.cfg.SessionSeconds)*time.Second, func() {
			p := m.Puzzle()
			m.End(engine.Verdict{
				Outcome:  engine.OutcomeGameOver,
				Feedback: engine.Info(fmt.Sprintf("Time's up! %d correct, %d wrong", p.Correct, p.Wrong)),
			})
		})
	}
	m.Await(0)
}

func (r *rules) Expire(*engine.Machine[Stimulus]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

func (r *rules) answer(ink int) func(s *Stimulus) engine.Verdict {
	return func(s *Stimulus) engine.Verdict {
		if ink == s.Answer {
			s.Correct++
			return engine.Verdict{Outcome: engine.OutcomeNextRound, Award: r.cfg.Correct}
		}
		s.Wrong++
		return engine.Verdict{Outcome: engine.OutcomeNextRound, Penalty: r.cfg.Wrong}
	}
}

// Game implements registry.Game for the Stroop test.
type Game struct {
	play.Session[Stimulus]
	rules  *rules
	cursor core.Cursor
}

// New creates a Stroop test game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Stimulus](info, deps)}
}

// Reset loads the config and mounts a fresh run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadStroop(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("stroop config, using defaults", "err", err)
		cfg = config.DefaultStroopConfig()
	}

	g.rules = &rules{cfg: cfg, mode: Mode(cfg.Mode)}
	g.Mount(rt, g.rules, engine.WithMaxLevel(1))
	g.cursor = core.NewCursor(1, len(Inks))
}

// Answer picks ink i as the answer.
func (g *Game) Answer(i int) bool {
	if i < 0 || i >= len(Inks) {
		return false
	}
	return g.M.Act(g.rules.answer(i))
}

// SetMode switches between word and shape mode. It only applies while
// idle, where it regenerates the first stimulus.
func (g *Game) SetMode(mode Mode) bool {
	if g.M.Phase() != engine.PhaseIdle {
		return false
	}
	g.rules.mode = mode
	g.M.Restart()
	return true
}

// Remaining returns what is left of the session clock.
func (g *Game) Remaining() time.Duration {
	return g.M.SessionRemaining(g.rules.clock)
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		if d, ok := a.Digit(); ok {
			g.Answer(d - 1)
			continue
		}
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionMode:
			next := ModeShape
			if g.rules.mode == ModeShape {
				next = ModeWord
			}
			g.SetMode(next)
		case a == core.ActionConfirm:
			g.Answer(g.cursor.Index())
		}
	}
	g.Tick()
	return core.StepResult{State: g.State()}
}

// Render draws the stimulus and the answer buttons.
func (g *Game) Render(dst *core.Screen) {
	s := g.M.Puzzle()
	clock := fmt.Sprintf("%ds", g.rules.cfg.SessionSeconds)
	if g.M.Phase() != engine.PhaseIdle {
		clock = play.Seconds(g.Remaining())
	}
	top := play.Frame(dst, g.Title(), g.M, clock, fmt.Sprintf("✓%d ✗%d", s.Correct, s.Wrong))

	prompt := "What colour is the word written in?"
	if g.rules.mode == ModeShape {
		prompt = "What colour is the shape's border?"
	}
	dst.DrawTextCenteredColored(top, prompt, core.ColorGray)
	top += 2

	if g.M.Phase() == engine.PhaseAwaiting {
		if s.Mode == ModeShape {
			drawShape(dst, top, s)
		} else {
			dst.DrawTextCenteredColored(top+1, Inks[s.Word].Name, Inks[s.Answer].Color)
		}
	}
	top += 4

	x := (dst.Width() - len(Inks)*10) / 2
	for i, ink := range Inks {
		label := fmt.Sprintf("%d %s", i+1, ink.Name)
		if g.cursor.Index() == i {
			label = "[" + label + "]"
		}
		dst.DrawTextColored(x+i*10, top, label, ink.Color)
	}

	play.Banner(dst, top+2, g.M, fmt.Sprintf("Mode: %s  (m to switch)", g.rules.mode))
	play.Hints(dst, "1-5 answer · ←/→ enter · m mode · r restart · b back")
}

var outlines = map[Shape][3]string{
	ShapeCircle:   {" .-----. ", "(       )", " '-----' "},
	ShapeSquare:   {"+-------+", "|       |", "+-------+"},
	ShapeTriangle: {"    ^    ", "   / \\   ", "  /___\\  "},
}

func drawShape(dst *core.Screen, top int, s Stimulus) {
	x := (dst.Width() - 9) / 2
	for dy, line := range outlines[s.Shape] {
		first := strings.IndexFunc(line, notSpace)
		last := strings.LastIndexFunc(line, notSpace)
		for dx, r := range line {
			switch {
			case r != ' ':
				dst.SetColored(x+dx, top+dy, r, Inks[s.Answer].Color)
			case dx > first && dx < last:
				dst.SetColored(x+dx, top+dy, '▒', Inks[s.Fill].Color)
			}
		}
	}
	dst.DrawTextCenteredColored(top+3, Inks[s.Word].Name, core.ColorWhite)
}

func notSpace(r rune) bool { return r != ' ' }

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
