package schulte

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
	ID:          "schulte",
	Title:       "Schulte Table",
	Description: "Find the numbers in order as fast as you can",
}

type rules struct {
	cfg     config.SchulteConfig
	shuffle bool
}

func (r *rules) Generate(rng *rand.Rand, _ int, _ Table) (Table, error) {
	return Generate(rng, r.cfg.Size)
}

func (r *rules) Enter(m *engine.Machine[Table]) {
	m.Await(0)
}

func (r *rules) Expire(*engine.Machine[Table]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

// click handles a click on cell i. Wrong numbers cost nothing.
func (r *rules) click(m *engine.Machine[Table], i int) func(t *Table) engine.Verdict {
	return func(t *Table) engine.Verdict {
		if !t.Started {
			t.Started = true
			t.StartAt = m.Now()
		}
		if i < 0 || i >= len(t.Numbers) || t.Numbers[i] != t.Next {
			return engine.Verdict{
				Outcome:  engine.OutcomeContinue,
				Feedback: engine.Wrong(fmt.Sprintf("Looking for %d", t.Next)),
			}
		}

		found := t.Next
		t.Next++
		if t.Next <= len(t.Numbers) {
			if r.shuffle {
				t.Numbers = slices.Clone(t.Numbers)
				ShuffleRemaining(m.Rand(), t.Numbers, found)
			}
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}

		seconds, points := Points(r.cfg.Scoring, m.Now()-t.StartAt)
		return engine.Verdict{
			Outcome:  engine.OutcomeComplete,
			Award:    points,
			Feedback: engine.Rating(fmt.Sprintf("Done in %ds  +%d", seconds, points)),
		}
	}
}

// Game implements registry.Game for the Schulte table.
type Game struct {
	play.Session[Table]
	rules  *rules
	cursor core.Cursor
}

// New creates a Schulte table game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Table](info, deps)}
}

// Reset loads the config and mounts a fresh table.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSchulte(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("schulte config, using defaults", "err", err)
		cfg = config.DefaultSchulteConfig()
	}

	g.rules = &rules{cfg: cfg, shuffle: cfg.Shuffle}
	g.Mount(rt, g.rules, engine.WithMaxLevel(1))
	g.cursor = core.NewCursor(cfg.Size, cfg.Size)
}

// Click selects cell i.
func (g *Game) Click(i int) bool {
	return g.M.Act(g.rules.click(g.M, i))
}

// Shuffle reports whether shuffle mode is on.
func (g *Game) Shuffle() bool { return g.rules.shuffle }

// SetShuffle turns shuffle mode on or off. It is refused while the clock
// is running.
func (g *Game) SetShuffle(on bool) bool {
	switch g.M.Phase() {
	case engine.PhaseAwaiting, engine.PhaseResolving:
		if g.M.Puzzle().Started {
			return false
		}
	}
	g.rules.shuffle = on
	return true
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionMode:
			g.SetShuffle(!g.rules.shuffle)
		case a == core.ActionConfirm:
			g.Click(g.cursor.Index())
		}
	}
	g.Tick()
	return core.StepResult{State: g.State()}
}

// Render draws the table.
func (g *Game) Render(dst *core.Screen) {
	t := g.M.Puzzle()

	var elapsed string
	if t.Started && g.M.Phase() == engine.PhaseAwaiting {
		elapsed = fmt.Sprintf("%ds", int((g.M.Now()-t.StartAt).Seconds()))
	}
	mode := "Shuffle off"
	if g.rules.shuffle {
		mode = "Shuffle on"
	}
	top := play.Frame(dst, g.Title(), g.M, mode)

	next := fmt.Sprintf("Find: %d", min(t.Next, len(t.Numbers)))
	if elapsed != "" {
		next += "   " + elapsed
	}
	dst.DrawTextCenteredColored(top, next, core.ColorYellow)
	top += 2

	for i, n := range t.Numbers {
		row, col := i/t.Size, i%t.Size
		x, y := play.CellOrigin(dst, top, t.Size, play.CellWidth, 1, row, col)
		c := core.ColorWhite
		if t.Cleared(n) {
			c = core.ColorGreen
		}
		play.Cell(dst, x, y, fmt.Sprintf("%3d", n), c, g.cursor.Index() == i)
	}

	play.Banner(dst, top+t.Size+1, g.M, "Click 1 to "+fmt.Sprint(len(t.Numbers))+" in order")
	play.Hints(dst, "arrows move · enter pick · m shuffle · r restart · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
