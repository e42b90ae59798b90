package hue

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/registry"
	"github.com/vovakirdan/mindflex/internal/score"
)

func newGame(t *testing.T) (*Game, *score.Tally) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	tally := score.New()
	g := New(registry.Deps{Tally: tally})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	g.Step(core.NewInputFrame(core.ActionConfirm))
	return g, tally
}

// solve swaps tiles into place through the public Pick API.
func solve(t *testing.T, g *Game) {
	t.Helper()
	b := g.M.Puzzle()
	for i := range b.Tiles {
		b = g.M.Puzzle()
		want := i % b.Cols
		if b.Tiles[i] == want {
			continue
		}
		for j := i + 1; j < len(b.Tiles); j++ {
			if b.Tiles[j] == want {
				g.Pick(i)
				g.Pick(j)
				break
			}
		}
	}
	if !g.M.Puzzle().Solved() {
		t.Fatalf("board %v not solved", g.M.Puzzle().Tiles)
	}
}

func TestGenerateNeverSolved(t *testing.T) {
	cfg := config.DefaultHueConfig()
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 10000; trial++ {
		level := 1 + trial%3
		b, err := Generate(rng, cfg, level)
		if err != nil {
			t.Fatal(err)
		}
		if b.Rows != level || b.Cols != 3 || len(b.Tiles) != 3*level {
			t.Fatalf("level %d board %dx%d", level, b.Rows, b.Cols)
		}
		if b.Solved() {
			t.Fatalf("level %d: shuffle %v equals the solution", level, b.Tiles)
		}
		counts := make([]int, b.Cols)
		for _, s := range b.Tiles {
			counts[s]++
		}
		for s, n := range counts {
			if n != b.Rows {
				t.Fatalf("shade %d appears %d times, expected %d", s, n, b.Rows)
			}
		}
	}
}

func TestShadeGradient(t *testing.T) {
	cfg := config.DefaultHueConfig()
	dark, light := Shade(cfg, 3, 0), Shade(cfg, 3, 2)
	if dark != core.HSL(140, 65, 30) || light != core.HSL(140, 65, 75) {
		t.Errorf("gradient ends %x..%x", dark, light)
	}
}

func TestPickSwapsAndCountsMoves(t *testing.T) {
	g, _ := newGame(t)
	before := g.M.Puzzle().Tiles

	g.Pick(0)
	if g.M.Puzzle().Selected != 0 {
		t.Fatalf("Selected = %d, expected 0", g.M.Puzzle().Selected)
	}
	g.Pick(2)
	b := g.M.Puzzle()
	if b.Tiles[0] != before[2] || b.Tiles[2] != before[0] {
		t.Errorf("tiles %v, expected 0 and 2 swapped from %v", b.Tiles, before)
	}
	if b.Moves != 1 || b.Selected != -1 {
		t.Errorf("moves=%d selected=%d", b.Moves, b.Selected)
	}

	g.Pick(1)
	g.Pick(1)
	if g.M.Puzzle().Selected != -1 || g.M.Puzzle().Moves != 1 {
		t.Error("picking the same tile twice should deselect without a move")
	}
}

func TestCheckUnsolvedHasNoPenalty(t *testing.T) {
	g, tally := newGame(t)
	tally.Add(5)

	g.Check()
	if g.M.Phase() != engine.PhaseAwaiting || tally.Total() != 5 {
		t.Errorf("phase=%s total=%d", g.M.Phase(), tally.Total())
	}
	if g.M.Feedback().Kind != engine.FeedbackWrong {
		t.Errorf("Feedback() = %+v", g.M.Feedback())
	}
}

func TestLadderScoring(t *testing.T) {
	g, tally := newGame(t)

	tests := []struct {
		level int
		total int
	}{
		{1, 30},
		{2, 70},
		{3, 120},
	}
	for _, tc := range tests {
		if g.M.Level() != tc.level {
			t.Fatalf("Level() = %d, expected %d", g.M.Level(), tc.level)
		}
		solve(t, g)
		g.Step(core.NewInputFrame(core.ActionCheck))
		if g.M.Phase() != engine.PhaseComplete {
			t.Fatalf("level %d: Phase() = %s", tc.level, g.M.Phase())
		}
		if tally.Total() != tc.total {
			t.Errorf("level %d: Total() = %d, expected %d", tc.level, tally.Total(), tc.total)
		}
		g.Step(core.NewInputFrame(core.ActionNext))
	}

	if !g.M.Finished() || g.M.Level() != 3 {
		t.Errorf("finished=%v level=%d after the last level", g.M.Finished(), g.M.Level())
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "I LOVE HUE") {
		t.Error("render should include the title")
	}
	if !strings.Contains(screen.String(), "Moves 0") {
		t.Error("render should show the move count")
	}
	if !strings.Contains(screen.Row(2), "────") {
		t.Errorf("Row(2) = %q, expected a rule under the status line", screen.Row(2))
	}
	if got, want := strings.Count(screen.String(), "█"), 5*len(g.M.Puzzle().Tiles); got != want {
		t.Errorf("%d tile cells drawn, expected %d", got, want)
	}
}
