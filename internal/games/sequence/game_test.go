package sequence

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
	"github.com/vovakirdan/mindflex/internal/registry"
	"github.com/vovakirdan/mindflex/internal/score"
)

const tick = time.Second / 60

func newGame(t *testing.T) (*Game, *score.Tally) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	tally := score.New()
	g := New(registry.Deps{Tally: tally})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, tally
}

// waitFor steps the game until phase is reached or the budget runs out.
func waitFor(t *testing.T, g *Game, phase engine.Phase) {
	t.Helper()
	for i := 0; i < 60*60; i++ {
		if g.M.Phase() == phase {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatalf("Phase() = %s, never reached %s", g.M.Phase(), phase)
}

func TestGenerateExtendsPrevious(t *testing.T) {
	cfg := config.DefaultSequenceConfig()
	rng := rand.New(rand.NewSource(3))

	p := Generate(rng, cfg, 1, Pattern{})
	if len(p.Tiles) != 2 || p.Lit != -1 {
		t.Fatalf("level 1 pattern = %+v", p)
	}
	for level := 2; level <= 6; level++ {
		next := Generate(rng, cfg, level, p)
		if len(next.Tiles) != len(p.Tiles)+1 {
			t.Fatalf("level %d: len = %d, expected %d", level, len(next.Tiles), len(p.Tiles)+1)
		}
		if !slices.Equal(next.Tiles[:len(p.Tiles)], p.Tiles) {
			t.Fatalf("level %d: prefix %v changed from %v", level, next.Tiles, p.Tiles)
		}
		for _, tile := range next.Tiles {
			if tile < 0 || tile >= 9 {
				t.Fatalf("tile %d outside the pad", tile)
			}
		}
		p = next
	}

	fresh := Generate(rng, cfg, 4, Pattern{})
	if len(fresh.Tiles) != 5 {
		t.Errorf("fresh level 4 len = %d, expected 5", len(fresh.Tiles))
	}
}

func TestPlaybackTiming(t *testing.T) {
	cfg := config.DefaultSequenceConfig()
	tests := []struct {
		level int
		delay time.Duration
	}{
		{1, 600 * time.Millisecond},
		{3, 520 * time.Millisecond},
		{20, 300 * time.Millisecond},
	}
	for _, tc := range tests {
		steps := Playback(cfg, tc.level, []int{4, 1})
		if len(steps) != 4 {
			t.Fatalf("len(steps) = %d, expected 4", len(steps))
		}
		if steps[0].Delay != tc.delay {
			t.Errorf("level %d: on delay = %v, expected %v", tc.level, steps[0].Delay, tc.delay)
		}
		if want := time.Duration(float64(tc.delay) * 0.75); steps[1].Delay != want {
			t.Errorf("level %d: lit = %v, expected %v", tc.level, steps[1].Delay, want)
		}

		var p Pattern
		steps[2].Apply(&p)
		if p.Lit != 1 {
			t.Errorf("step 2 lit %d, expected 1", p.Lit)
		}
		steps[3].Apply(&p)
		if p.Lit != -1 {
			t.Errorf("step 3 lit %d, expected -1", p.Lit)
		}
	}
}

func TestInputIgnoredDuringPlayback(t *testing.T) {
	g, _ := newGame(t)
	g.Step(core.NewInputFrame(core.ActionConfirm))

	if g.M.Phase() != engine.PhasePresenting {
		t.Fatalf("Phase() = %s, expected presenting", g.M.Phase())
	}
	if g.Press(g.M.Puzzle().Tiles[0]) {
		t.Error("Press() during playback should be ignored")
	}
}

func TestPlaybackLightsEachTile(t *testing.T) {
	g, _ := newGame(t)
	g.Step(core.NewInputFrame(core.ActionConfirm))

	var seen []int
	last := -1
	for g.M.Phase() == engine.PhasePresenting {
		g.Step(core.NewInputFrame())
		if lit := g.M.Puzzle().Lit; lit != -1 && lit != last {
			seen = append(seen, lit)
		}
		last = g.M.Puzzle().Lit
	}
	if !slices.Equal(seen, g.M.Puzzle().Tiles) {
		t.Errorf("lit %v, expected %v", seen, g.M.Puzzle().Tiles)
	}
	if g.M.Puzzle().Lit != -1 {
		t.Error("a tile is still lit after playback")
	}
}

func TestScenarioGrowThenFail(t *testing.T) {
	g, tally := newGame(t)
	g.Step(core.NewInputFrame(core.ActionConfirm))
	waitFor(t, g, engine.PhaseAwaiting)

	first := g.M.Puzzle().Tiles
	for _, tile := range first {
		if !g.Press(tile) {
			t.Fatalf("Press(%d) ignored", tile)
		}
	}
	if g.M.Feedback().Text != "Correct!" {
		t.Errorf("Feedback() = %q", g.M.Feedback().Text)
	}

	for i := 0; i < 31; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.M.Level() != 2 {
		t.Fatalf("Level() = %d, expected 2", g.M.Level())
	}
	second := g.M.Puzzle().Tiles
	if len(second) != 3 || !slices.Equal(second[:2], first) {
		t.Fatalf("level 2 tiles %v do not extend %v", second, first)
	}

	waitFor(t, g, engine.PhaseAwaiting)
	g.Press(second[0])
	g.Press((second[1] + 1) % 9)

	if !g.State().GameOver {
		t.Fatalf("State() = %+v, expected game over", g.State())
	}
	if tally.Total() != 15 {
		t.Errorf("Total() = %d, expected 15 for failing level 2", tally.Total())
	}
}

func TestFailOnFirstLevelScoresNothing(t *testing.T) {
	g, tally := newGame(t)
	g.Step(core.NewInputFrame(core.ActionConfirm))
	waitFor(t, g, engine.PhaseAwaiting)

	g.Press((g.M.Puzzle().Tiles[0] + 1) % 9)
	if !g.State().GameOver || tally.Total() != 0 {
		t.Errorf("state=%+v total=%d", g.State(), tally.Total())
	}
}

func TestDigitKeysPressTiles(t *testing.T) {
	g, _ := newGame(t)
	g.Step(core.NewInputFrame(core.ActionConfirm))
	waitFor(t, g, engine.PhaseAwaiting)

	tile := g.M.Puzzle().Tiles[0]
	g.Step(core.NewInputFrame(core.DigitAction(tile + 1)))
	if g.M.Puzzle().Pos != 1 {
		t.Errorf("Pos = %d after pressing digit %d", g.M.Puzzle().Pos, tile+1)
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "SEQUENCE MEMORY") {
		t.Error("render should include the title")
	}
	if !strings.Contains(out, "Length 2") {
		t.Error("render should include the sequence length")
	}
}
