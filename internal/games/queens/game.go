package queens

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
	ID:          "queens",
	Title:       "Queens",
	Description: "One queen per row, column and region, none touching",
}

var regionColors = []core.Color{
	core.HSL(0, 60, 45),
	core.HSL(210, 60, 45),
	core.HSL(120, 45, 40),
	core.HSL(45, 70, 50),
	core.HSL(280, 45, 50),
	core.HSL(180, 50, 40),
	core.HSL(25, 70, 50),
	core.HSL(330, 55, 50),
	core.HSL(90, 45, 45),
}

type rules struct {
	cfg config.QueensConfig
}

func (r *rules) Generate(rng *rand.Rand, _ int, prev Board) (Board, error) {
	return Generate(rng, r.cfg, prev)
}

func (r *rules) Enter(m *engine.Machine[Board]) {
	m.Await(0)
}

func (r *rules) Expire(*engine.Machine[Board]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

func (r *rules) cycle(level, i int) func(b *Board) engine.Verdict {
	return func(b *Board) engine.Verdict {
		if i < 0 || i >= len(b.Marks) {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}
		b.Marks = slices.Clone(b.Marks)
		b.Marks[i] = b.Marks[i].Next()
		if !b.Won() {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}

		points := r.cfg.Award.For(level)
		return engine.Verdict{
			Outcome:  engine.OutcomeComplete,
			Award:    points,
			Feedback: engine.Correct(fmt.Sprintf("Solved!  +%d", points)),
		}
	}
}

func clearMarks(b *Board) engine.Verdict {
	b.Marks = make([]Mark, len(b.Marks))
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

// Game implements registry.Game for Queens.
type Game struct {
	play.Session[Board]
	rules  *rules
	cursor core.Cursor
}

// New creates a Queens game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Board](info, deps)}
}

// Reset loads the puzzles and mounts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadQueens(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("queens config, using defaults", "err", err)
		cfg = config.DefaultQueensConfig()
	}
	cfg.Puzzles = g.solvable(cfg.Puzzles)

	_, maxLevel := config.Ladder(g.Deps().Preset, 0)
	g.rules = &rules{cfg: cfg}
	g.Mount(rt, g.rules, engine.WithMaxLevel(maxLevel))
	g.syncCursor()
}

// solvable drops boards that admit no placement. It falls back to the
// built-in puzzles when nothing is left.
func (g *Game) solvable(puzzles [][][]int) [][][]int {
	kept := make([][][]int, 0, len(puzzles))
	for i, regions := range puzzles {
		if _, ok := Solve(regions); !ok {
			g.Logger().Warn("queens puzzle has no solution, skipping", "puzzle", i+1, "size", len(regions))
			continue
		}
		kept = append(kept, regions)
	}
	if len(kept) == 0 {
		g.Logger().Warn("no solvable queens puzzles, using defaults")
		return config.DefaultQueensConfig().Puzzles
	}
	return kept
}

// Cycle advances the mark on cell i.
func (g *Game) Cycle(i int) bool {
	return g.M.Act(g.rules.cycle(g.M.Level(), i))
}

// Clear removes every mark.
func (g *Game) Clear() bool {
	return g.M.Act(clearMarks)
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		g.syncCursor()
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionClear:
			g.Clear()
		case a == core.ActionConfirm:
			g.Cycle(g.cursor.Index())
		}
	}
	g.Tick()
	g.syncCursor()
	return core.StepResult{State: g.State()}
}

func (g *Game) syncCursor() {
	if n := g.M.Puzzle().Size(); g.cursor.Rows != n {
		g.cursor.Resize(n, n)
	}
}

// Render draws the regions, marks and conflicts.
func (g *Game) Render(dst *core.Screen) {
	b := g.M.Puzzle()
	n := b.Size()
	top := play.Frame(dst, g.Title(), g.M, fmt.Sprintf("Puzzle %d", b.Index+1))
	dst.DrawTextCenteredColored(top, "One ♛ per row, column and colour; queens may not touch", core.ColorGray)
	top += 2

	conflicts := b.Conflicts()
	for i, mark := range b.Marks {
		row, col := i/n, i%n
		x, y := play.CellOrigin(dst, top, n, play.CellWidth, 1, row, col)
		c := regionColors[b.Regions[row][col]%len(regionColors)]

		glyph := "░░░"
		switch mark {
		case MarkX:
			glyph = "░✕░"
		case MarkQueen:
			glyph = "░♛░"
			if conflicts[i] {
				c = core.ColorBrightRed
			}
		}
		play.Cell(dst, x, y, glyph, c, g.cursor.Index() == i)
	}

	play.Banner(dst, top+n+1, g.M, "Enter cycles empty, ✕ and ♛")
	play.Hints(dst, "arrows move · enter mark · x clear · r restart · n next · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
