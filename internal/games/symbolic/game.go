package symbolic

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/games/play"
	"github.com/vovakirdan/mindflex/internal/registry"
)

var info = registry.GameInfo{
	ID:          "symbolic",
	Title:       "Symbolic Savings",
	Description: "Pick the character whose symbols are worth more",
}

type rules struct {
	cfg config.SymbolicConfig
}

func (r *rules) Generate(rng *rand.Rand, _ int, prev Round) (Round, error) {
	return Generate(rng, r.cfg, prev)
}

func (r *rules) Enter(m *engine.Machine[Round]) {
	m.Await(0)
}

func (r *rules) Expire(*engine.Machine[Round]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

// choose answers a round. The totals stay revealed for the pacing window.
func (r *rules) choose(side Side) func(rd *Round) engine.Verdict {
	return func(rd *Round) engine.Verdict {
		rd.Revealed = true
		v := engine.Verdict{Outcome: engine.OutcomeNextRound, Delay: config.Millis(r.cfg.PacingMs)}
		if side == rd.Richer() {
			points := r.cfg.Correct + r.cfg.StreakBonus*rd.Streak
			rd.Streak++
			v.Award = points
			v.Feedback = engine.Correct(fmt.Sprintf("Correct!  +%d", points))
			return v
		}
		rd.Streak = 0
		v.Penalty = r.cfg.Wrong
		v.Feedback = engine.Wrong(fmt.Sprintf("Wrong, %s was richer  -%d", rd.Richer(), r.cfg.Wrong))
		return v
	}
}

// Game implements registry.Game for Symbolic Savings.
type Game struct {
	play.Session[Round]
	rules *rules
}

// New creates a Symbolic Savings game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Round](info, deps)}
}

// Reset loads the config and mounts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSymbolic(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("symbolic config, using defaults", "err", err)
		cfg = config.DefaultSymbolicConfig()
	}

	g.rules = &rules{cfg: cfg}
	g.Mount(rt, g.rules, engine.WithMaxLevel(1))
}

// Choose picks the left or right character.
func (g *Game) Choose(side Side) bool {
	return g.M.Act(g.rules.choose(side))
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		switch {
		case g.Control(a):
		case a == core.ActionLeft || a == core.ActionDigit1:
			g.Choose(SideLeft)
		case a == core.ActionRight || a == core.ActionDigit2:
			g.Choose(SideRight)
		}
	}
	g.Tick()
	return core.StepResult{State: g.State()}
}

// Render draws the symbol values and both characters.
func (g *Game) Render(dst *core.Screen) {
	rd := g.M.Puzzle()
	top := play.Frame(dst, g.Title(), g.M, fmt.Sprintf("Streak %d", rd.Streak))

	x := (dst.Width() - len(Symbols)*10) / 2
	for i, s := range Symbols {
		dst.DrawTextColored(x+i*10, top, s.Glyph, s.Color)
		if i < len(rd.Values) {
			dst.DrawTextColored(x+i*10+2, top, fmt.Sprintf("= %d", rd.Values[i]), core.ColorWhite)
		}
	}
	top += 2

	mid := dst.Width() / 2
	drawCharacter(dst, mid-24, top, "LEFT (←)", rd.Left, rd.Revealed && rd.Richer() == SideLeft, rd.Revealed)
	drawCharacter(dst, mid+4, top, "RIGHT (→)", rd.Right, rd.Revealed && rd.Richer() == SideRight, rd.Revealed)

	play.Banner(dst, top+6, g.M, "Who has saved more? Choose with ← or →")
	play.Hints(dst, "←/1 left · →/2 right · r restart · b back")
}

func drawCharacter(dst *core.Screen, x, y int, label string, c Character, richer, revealed bool) {
	box := core.NewRect(x, y, 20, 5)
	border := core.ColorGray
	if richer {
		border = core.ColorBrightGreen
	}
	dst.DrawBox(box, border)
	dst.DrawTextColored(x+2, y, " "+label+" ", core.ColorWhite)

	var line strings.Builder
	for _, it := range c.Items {
		fmt.Fprintf(&line, "%d×%s ", it.Count, Symbols[it.Symbol].Glyph)
	}
	dst.DrawTextColored(x+2, y+2, strings.TrimSpace(line.String()), core.ColorYellow)
	if revealed {
		dst.DrawTextColored(x+2, y+3, fmt.Sprintf("= %d", c.Total), core.ColorWhite)
	}
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
