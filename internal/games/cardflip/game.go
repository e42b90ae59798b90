package cardflip

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
	ID:          "cardflip",
	Title:       "Card Flip",
	Description: "Find every matching pair in as few moves as possible",
}

type rules struct {
	cfg config.CardFlipConfig
}

func (r *rules) Generate(rng *rand.Rand, level int, _ Deck) (Deck, error) {
	return Generate(rng, r.cfg, level), nil
}

func (r *rules) Enter(m *engine.Machine[Deck]) {
	m.Await(0)
}

func (r *rules) Expire(*engine.Machine[Deck]) engine.Verdict {
	return engine.Verdict{Outcome: engine.OutcomeContinue}
}

// flip turns card i face up. The second card of a move decides: a match
// stays up, a mismatch turns both back after a pause.
func (r *rules) flip(level, i int) func(d *Deck) engine.Verdict {
	return func(d *Deck) engine.Verdict {
		if i < 0 || i >= len(d.Cards) || d.Shown(i) {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}
		d.Up = append(slices.Clone(d.Up), i)
		if len(d.Up) < 2 {
			return engine.Verdict{Outcome: engine.OutcomeContinue}
		}

		d.Moves++
		a, b := d.Up[0], d.Up[1]
		if d.Cards[a].Face != d.Cards[b].Face {
			return engine.Verdict{
				Outcome:  engine.OutcomeContinue,
				Penalty:  r.cfg.Mismatch,
				Feedback: engine.Wrong(fmt.Sprintf("No match  -%d", r.cfg.Mismatch)),
				Delay:    config.Millis(r.cfg.MismatchMs),
				Settle:   func() { d.Up = nil },
			}
		}

		d.Cards = slices.Clone(d.Cards)
		d.Cards[a].Matched = true
		d.Cards[b].Matched = true
		d.Up = nil
		d.Pairs++
		if !d.Cleared() {
			return engine.Verdict{
				Outcome:  engine.OutcomeContinue,
				Award:    r.cfg.Match,
				Feedback: engine.Correct(fmt.Sprintf("Match!  +%d", r.cfg.Match)),
				Delay:    config.Millis(r.cfg.MatchMs),
			}
		}

		bonus := r.cfg.LevelBonus * level
		return engine.Verdict{
			Outcome:  engine.OutcomeLevelUp,
			Award:    r.cfg.Match + bonus,
			Feedback: engine.Rating(fmt.Sprintf("Level %d cleared in %d moves  +%d bonus", level, d.Moves, bonus)),
			Delay:    config.Millis(r.cfg.AdvanceMs),
		}
	}
}

// Game implements registry.Game for Card Flip.
type Game struct {
	play.Session[Deck]
	rules  *rules
	cursor core.Cursor
}

// New creates a Card Flip game.
func New(deps registry.Deps) *Game {
	return &Game{Session: play.NewSession[Deck](info, deps)}
}

// Reset loads the ladder and mounts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadCardFlip(g.Deps().ConfigPath)
	if err != nil {
		g.Logger().Warn("cardflip config, using defaults", "err", err)
		cfg = config.DefaultCardFlipConfig()
	}

	start, maxLevel := config.Ladder(g.Deps().Preset, len(cfg.Levels))
	g.rules = &rules{cfg: cfg}
	g.Mount(rt, g.rules, engine.WithStartLevel(start), engine.WithMaxLevel(maxLevel))
	g.syncCursor()
}

// Flip turns card i.
func (g *Game) Flip(i int) bool {
	return g.M.Act(g.rules.flip(g.M.Level(), i))
}

// Step applies input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		g.syncCursor()
		switch {
		case g.Control(a):
		case g.cursor.Move(a):
		case a == core.ActionConfirm:
			g.Flip(g.cursor.Index())
		}
	}
	g.Tick()
	g.syncCursor()
	return core.StepResult{State: g.State()}
}

func (g *Game) syncCursor() {
	d := g.M.Puzzle()
	rows := (len(d.Cards) + d.Cols - 1) / d.Cols
	if g.cursor.Rows != rows || g.cursor.Cols != d.Cols {
		g.cursor.Resize(rows, d.Cols)
	}
}

// Render draws the table.
func (g *Game) Render(dst *core.Screen) {
	d := g.M.Puzzle()
	elapsed := fmt.Sprintf("%ds", int(g.M.RoundElapsed().Seconds()))
	top := play.Frame(dst, g.Title(), g.M, fmt.Sprintf("Moves %d", d.Moves), elapsed)
	dst.DrawTextCenteredColored(top, fmt.Sprintf("Pairs %d/%d", d.Pairs, len(d.Cards)/2), core.ColorGray)
	top += 2

	for i, c := range d.Cards {
		row, col := i/d.Cols, i%d.Cols
		x, y := play.CellOrigin(dst, top, d.Cols, play.CellWidth, 1, row, col)
		glyph, color := "▒▒▒", core.ColorBlue
		if d.Shown(i) {
			f := Faces[c.Face]
			glyph, color = " "+f.Glyph+" ", f.Color
			if c.Matched {
				color = core.ColorGray
			}
		}
		play.Cell(dst, x, y, glyph, color, g.cursor.Index() == i)
	}

	rows := (len(d.Cards) + d.Cols - 1) / d.Cols
	play.Banner(dst, top+rows+1, g.M, "Flip two cards; matching pairs stay up")
	play.Hints(dst, "arrows move · enter flip · r restart · n next · b back")
}

func init() {
	registry.Register(info, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
