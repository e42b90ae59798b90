package impulse

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/games/play"
	"github.com/vovakirdan/mindflex/internal/registry"
)

var info = registry.GameInfo{
	ID:          "impulse",
	Title:       "Impulse Control",
	Description: "Hit only the green circle; let everything else pass",
}

type rules struct {
	cfg  config.ImpulseConfig
	mode Mode
}

func (r *rules) Generate(rng *rand.Rand, _ int, prev Wave) (Wave, error) {
	return Generate(rng, r.cfg, r.mode, prev), nil
}

func (r *rules) Enter(m *engine.Machine[Wave]) {
	m.Await(config.Millis(r.cfg.RoundMs))
}

// Expire scores a round the player let pass.
func (r *rules) Expire(m *engine.Machine[Wave]) engine.Verdict {
	hit := !m.Puzzle().HasTarget()
	m.Update(func(w *Wave) { w.tally(hit) })
	return r.score(m.Round(), hit, "Well held!", "Missed the green circle")
}

func (r *rules) click(round, i int) func(w *Wave) engine.Verdict {
	return func(w *Wave) engine.Verdict {
		w.Clicked = i
		hit := w.Shapes[i].Target()
		w.tally(hit)
		return r.score(round, hit, "Got it!", "Not a green circle")
	}
}

// score builds the verdict for a finished round. The last round
// completes the run.
func (r *rules) score(round int, hit bool, good, bad string) engine.Verdict {
	v := engine.Verdict{Outcome: engine.OutcomeNextRound, Delay: config.Millis(r.cfg.PacingMs)}
	if round >= r.cfg.Rounds {
		v.Outcome = engine.OutcomeComplete
	}
	if hit {
		v.Award = r.cfg.Correct
		v.Feedback = engine.Correct(fmt.Sprintf("%s  +%d", good, r.cfg.Correct))
	} else {
		v.Penalty = r.cfg.Wrong
		v.Feedback = engine.Wrong(fmt.Sprintf("%s  -%d", bad, r.cfg.Wrong))
	}
	return v
}

// Game implements registry.Game for Impulse Control.
type Game struct {
	play.Session[Wave]
	rules  *rules
	cursor core.Cursor
}

// New creates an Impulse Control game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Wave](info, deps)}
}

// Reset loads the config and mounts a fresh run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadImpulse(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("impulse config, using defaults", "err", err)
		cfg = config.DefaultImpulseConfig()
	}

	g.rules = &rules{cfg: cfg, mode: Mode(cfg.Mode)}
	g.Mount(rt, g.rules, engine.WithMaxLevel(1))
	g.syncCursor()
}

// Click hits shape i of the current wave.
func (g *Game) Click(i int) bool {
	if i < 0 || i >= len(g.M.Puzzle().Shapes) {
		return false
	}
	return g.M.Act(g.rules.click(g.M.Round(), i))
}

// SetMode switches between basic and advanced. It only applies while idle.
func (g *Game) SetMode(mode Mode) bool {
	if g.M.Phase() != engine.PhaseIdle {
		return false
	}
	g.rules.mode = mode
	g.M.Restart()
	g.syncCursor()
	return true
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		g.syncCursor()
		if d, ok := a.Digit(); ok {
			g.Click(d - 1)
			continue
		}
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionMode:
			next := ModeAdvanced
			if g.rules.mode == ModeAdvanced {
				next = ModeBasic
			}
			g.SetMode(next)
		case a == core.ActionConfirm:
			g.Click(g.cursor.Index())
		}
	}
	g.Tick()
	g.syncCursor()
	return core.StepResult{State: g.State()}
}

func (g *Game) syncCursor() {
	if n := max(len(g.M.Puzzle().Shapes), 1); g.cursor.Cols != n {
		g.cursor.Resize(1, n)
	}
}

// Render draws the wave.
func (g *Game) Render(dst *core.Screen) {
	w := g.M.Puzzle()
	round := fmt.Sprintf("Round %d/%d", min(max(g.M.Round(), 1), g.rules.cfg.Rounds), g.rules.cfg.Rounds)
	top := play.Frame(dst, g.Title(), g.M, round, fmt.Sprintf("✓%d ✗%d", w.Hits, w.Misses))
	dst.DrawTextCenteredColored(top, "Hit the green ● only", Colors[0])
	top += 2

	phase := g.M.Phase()
	if phase == engine.PhaseAwaiting || phase == engine.PhaseResolving {
		x0 := (dst.Width() - len(w.Shapes)*play.CellWidth) / 2
		for i, s := range w.Shapes {
			x := x0 + i*play.CellWidth
			play.Cell(dst, x, top, " "+s.Kind.Glyph()+" ", Colors[s.Color], phase == engine.PhaseAwaiting && g.cursor.Index() == i)
			label := fmt.Sprint(i + 1)
			if i == w.Clicked {
				label = "^"
			}
			dst.DrawTextColored(x+2, top+1, label, core.ColorGray)
		}
	}

	play.Banner(dst, top+3, g.M, fmt.Sprintf("Mode: %s  (m to switch)", g.rules.mode))
	play.Hints(dst, "1-6 or ←/→ enter hit · m mode · r restart · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
