package hue

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/games/play"
	"github.com/vovakirdan/mindflex/internal/registry"
)

var info = registry.GameInfo{
	ID:          "hue",
	Title:       "I Love Hue",
	Description: "Swap tiles until every row runs dark to light",
}

type rules struct {
	cfg config.HueConfig
}

func (r *rules) Generate(rng *rand.Rand, level int, _ Board) (Board, error) {
	return Generate(rng, r.cfg, level)
}

func (r *rules) Enter(m *engine.Machine[Board]) {
	m.Await(0)
}

func (r *rules) Expire(*engine.Machine[Board]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

// pick selects position i, swapping it with the previous selection.
func pick(i int) func(b *Board) engine.Verdict {
	return func(b *Board) engine.Verdict {
		if i < 0 || i >= len(b.Tiles) {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}
		switch b.Selected {
		case -1:
			b.Selected = i
		case i:
			b.Selected = -1
		default:
			b.Tiles = slices.Clone(b.Tiles)
			b.Tiles[b.Selected], b.Tiles[i] = b.Tiles[i], b.Tiles[b.Selected]
			b.Selected = -1
			b.Moves++
		}
		return engine.Verdict{Outcome: engine.OutcomeContinue}
	}
}

func (r *rules) check(level int) func(b *Board) engine.Verdict {
	return func(b *Board) engine.Verdict {
		if !b.Solved() {
			return engine.Verdict{
				Outcome:  engine.OutcomeContinue,
				Feedback: engine.Wrong("Not quite, keep going"),
			}
		}
		b.Selected = -1
		points := r.cfg.Award.For(level)
		return engine.Verdict{
			Outcome:  engine.OutcomeComplete,
			Award:    points,
			Feedback: engine.Correct(fmt.Sprintf("Perfect gradient in %d moves  +%d", b.Moves, points)),
		}
	}
}

// Game implements registry.Game for I Love Hue.
type Game struct {
	play.Session[Board]
	rules  *rules
	cursor core.Cursor
}

// New creates an I Love Hue game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Board](info, deps)}
}

// Reset loads the ladder and mounts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadHue(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("hue config, using defaults", "err", err)
		cfg = config.DefaultHueConfig()
	}

	start, maxLevel := config.Ladder(g.Deps().Preset, len(cfg.Levels))
	g.rules = &rules{cfg: cfg}
	g.Mount(rt, g.rules, engine.WithStartLevel(start), engine.WithMaxLevel(maxLevel))
	g.syncCursor()
}

// Pick selects tile i; a second pick swaps the two.
func (g *Game) Pick(i int) bool {
	return g.M.Act(pick(i))
}

// Check submits the board.
func (g *Game) Check() bool {
	return g.M.Act(g.rules.check(g.M.Level()))
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		g.syncCursor()
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionCheck:
			g.Check()
		case a == core.ActionConfirm:
			g.Pick(g.cursor.Index())
		}
	}
	g.Tick()
	g.syncCursor()
	return core.StepResult{State: g.State()}
}

func (g *Game) syncCursor() {
	b := g.M.Puzzle()
	if g.cursor.Rows != b.Rows || g.cursor.Cols != b.Cols {
		g.cursor.Resize(b.Rows, b.Cols)
	}
}

// Render draws the tiles.
func (g *Game) Render(dst *core.Screen) {
	b := g.M.Puzzle()
	top := play.Frame(dst, g.Title(), g.M, fmt.Sprintf("Moves %d", b.Moves))
	dst.DrawTextCenteredColored(top, "Arrange each row from dark to light", core.ColorGray)
	top += 2

	const cellW = 7
	for i, shade := range b.Tiles {
		row, col := i/b.Cols, i%b.Cols
		x, y := play.CellOrigin(dst, top, b.Cols, cellW, 2, row, col)
		c := Shade(g.rules.cfg, b.Cols, shade)
		dst.DrawRect(core.NewRect(x+1, y, cellW-2, 1), '█', c)
		switch {
		case i == b.Selected:
			dst.DrawTextColored(x+1, y+1, "  ^  ", core.ColorYellow)
		case g.cursor.Index() == i:
			dst.DrawTextColored(x+1, y+1, "  -  ", core.ColorWhite)
		}
	}

	play.Banner(dst, top+2*b.Rows+1, g.M, "Pick two tiles to swap them, c to check")
	play.Hints(dst, "arrows move · enter pick · c check · r restart · n next · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
