package toggle

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
	ID:          "toggle",
	Title:       "Color Toggle",
	Description: "Flip every target cell before the clock runs out",
}

type rules struct {
	cfg config.ToggleConfig
}

func (r *rules) Generate(rng *rand.Rand, level int, _ Board) (Board, error) {
	return Generate(rng, r.cfg, level), nil
}

func (r *rules) Enter(m *engine.Machine[Board]) {
	m.Await(m.Puzzle().Limit)
}

func (r *rules) Expire(*engine.Machine[Board]) engine.Verdict {
	return engine.Verdict{
		Outcome:  engine.OutcomeGameOver,
		Penalty:  r.cfg.TimeoutPenalty,
		Feedback: engine.Wrong("Time Over!"),
	}
}

// click flips cell i. Clicking a cell already in the goal color costs
// points but keeps the level running.
func (r *rules) click(m *engine.Machine[Board], i int) func(b *Board) engine.Verdict {
	return func(b *Board) engine.Verdict {
		if i < 0 || i >= len(b.Cells) || !b.Cells[i] {
			return engine.Verdict{
				Outcome:  engine.OutcomeContinue,
				Penalty:  r.cfg.WrongPenalty,
				Feedback: engine.Wrong(fmt.Sprintf("Not a %s cell  -%d", b.Pair.Target.Name, r.cfg.WrongPenalty)),
			}
		}

		b.Cells[i] = false
		b.Remaining--
		if b.Remaining > 0 {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}

		label, points := Rate(m.RoundElapsed(), b.Limit, m.Level())
		return engine.Verdict{
			Outcome:  engine.OutcomeComplete,
			Award:    points,
			Feedback: engine.Rating(fmt.Sprintf("%s +%d", label, points)),
		}
	}
}

// Game implements registry.Game for Color Toggle.
type Game struct {
	play.Session[Board]
	rules  *rules
	cursor core.Cursor
}

// New creates a Color Toggle game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Board](info, deps)}
}

// Reset loads the ladder and mounts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadToggle(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("toggle config, using defaults", "err", err)
		cfg = config.DefaultToggleConfig()
	}

	start, _ := config.Ladder(g.Deps().Preset, len(cfg.Levels))
	maxLevel := 0
	if g.Deps().Preset == config.DifficultyFixed {
		maxLevel = start
	}

	g.rules = &rules{cfg: cfg}
	g.Mount(rt, g.rules, engine.WithStartLevel(start), engine.WithMaxLevel(maxLevel))
	g.syncCursor()
}

// Click flips cell i of the current board.
func (g *Game) Click(i int) bool {
	return g.M.Act(g.rules.click(g.M, i))
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		g.syncCursor()
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionConfirm:
			g.Click(g.cursor.Index())
		}
	}
	g.Tick()
	g.syncCursor()
	return core.StepResult{State: g.State()}
}

func (g *Game) syncCursor() {
	if n := g.M.Puzzle().Size; g.cursor.Rows != n {
		g.cursor.Resize(n, n)
	}
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	b := g.M.Puzzle()
	top := play.Frame(dst, g.Title(), g.M, fmt.Sprintf("Left %d", b.Remaining))

	hint := fmt.Sprintf("Make every %s cell %s", b.Pair.Target.Name, b.Pair.Goal.Name)
	dst.DrawTextCenteredColored(top, hint, b.Pair.Target.Color)
	top += 2

	for i, target := range b.Cells {
		row, col := i/b.Size, i%b.Size
		x, y := play.CellOrigin(dst, top, b.Size, play.CellWidth, 1, row, col)
		c := b.Pair.Goal.Color
		if target {
			c = b.Pair.Target.Color
		}
		play.Cell(dst, x, y, "███", c, g.cursor.Row == row && g.cursor.Col == col)
	}

	play.Banner(dst, top+b.Size+1, g.M, hint)
	play.Hints(dst, "arrows move · enter flip · r restart · n next · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
