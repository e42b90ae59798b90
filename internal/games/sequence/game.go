package sequence

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
	ID:          "sequence",
	Title:       "Sequence Memory",
	Description: "Repeat the lit tiles in order; every level adds one",
}

// Tile colors, one per pad position.
var palette = []core.Color{
	core.HSL(355, 85, 55),
	core.HSL(200, 90, 55),
	core.HSL(145, 75, 45),
	core.HSL(45, 95, 55),
	core.HSL(280, 85, 60),
	core.HSL(20, 95, 55),
	core.HSL(165, 80, 45),
	core.HSL(325, 85, 60),
	core.HSL(215, 90, 55),
}

type rules struct {
	cfg config.SequenceConfig
}

func (r *rules) Generate(rng *rand.Rand, level int, prev Pattern) (Pattern, error) {
	return Generate(rng, r.cfg, level, prev), nil
}

func (r *rules) Enter(m *engine.Machine[Pattern]) {
	m.Present(Playback(r.cfg, m.Level(), m.Puzzle().Tiles), func() { m.Await(0) })
}

// Expire is unreachable: the input phase has no countdown.
func (r *rules) Expire(*engine.Machine[Pattern]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

func (r *rules) press(level, tile int) func(p *Pattern) engine.Verdict {
	return func(p *Pattern) engine.Verdict {
		if tile != p.Tiles[p.Pos] {
			points := (level - 1) * r.cfg.FailPerLevel
			return engine.Verdict{
				Outcome:  engine.OutcomeGameOver,
				Award:    points,
				Feedback: engine.Wrong(fmt.Sprintf("Wrong tile! Reached level %d  +%d", level, points)),
			}
		}

		p.Pos++
		if p.Pos < len(p.Tiles) {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}
		return engine.Verdict{
			Outcome:  engine.OutcomeLevelUp,
			Feedback: engine.Correct("Correct!"),
			Delay:    config.Millis(r.cfg.AdvanceMs),
		}
	}
}

// Game implements registry.Game for Sequence Memory.
type Game struct {
	play.Session[Pattern]
	rules  *rules
	cursor core.Cursor
}

// New creates a Sequence Memory game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Pattern](info, deps)}
}

// Reset loads the config and mounts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSequence(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("sequence config, using defaults", "err", err)
		cfg = config.DefaultSequenceConfig()
	}

	_, maxLevel := config.Ladder(g.Deps().Preset, 0)
	g.rules = &rules{cfg: cfg}
	g.Mount(rt, g.rules, engine.WithMaxLevel(maxLevel))
	g.cursor = core.NewCursor(cfg.GridSize, cfg.GridSize)
}

// Press reproduces one tile of the sequence.
func (g *Game) Press(tile int) bool {
	if tile < 0 || tile >= g.rules.cfg.GridSize*g.rules.cfg.GridSize {
		return false
	}
	return g.M.Act(g.rules.press(g.M.Level(), tile))
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		if d, ok := a.Digit(); ok {
			g.cursor.SetIndex(d - 1)
			g.Press(d - 1)
			continue
		}
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionConfirm:
			g.Press(g.cursor.Index())
		}
	}
	g.Tick()
	return core.StepResult{State: g.State()}
}

// Render draws the pad.
func (g *Game) Render(dst *core.Screen) {
	p := g.M.Puzzle()
	status := fmt.Sprintf("Length %d", len(p.Tiles))
	top := play.Frame(dst, g.Title(), g.M, status)

	switch g.M.Phase() {
	case engine.PhasePresenting:
		dst.DrawTextCenteredColored(top, "Watch...", core.ColorYellow)
	case engine.PhaseAwaiting:
		dst.DrawTextCenteredColored(top, fmt.Sprintf("Your turn  %d/%d", p.Pos, len(p.Tiles)), core.ColorWhite)
	}
	top += 2

	for i := range p.Grid * p.Grid {
		row, col := i/p.Grid, i%p.Grid
		x, y := play.CellOrigin(dst, top, p.Grid, play.CellWidth, 2, row, col)
		glyph := "░░░"
		if i == p.Lit {
			glyph = "███"
		}
		c := core.ColorGray
		if i < len(palette) {
			c = palette[i]
		}
		selected := g.M.Phase() == engine.PhaseAwaiting && g.cursor.Index() == i
		play.Cell(dst, x, y, glyph, c, selected)
		dst.DrawTextColored(x+2, y+1, fmt.Sprint(i+1), core.ColorGray)
	}

	play.Banner(dst, top+2*p.Grid+1, g.M, "Watch the pad, then repeat the sequence")
	play.Hints(dst, "1-9 or arrows+enter press · r restart · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
