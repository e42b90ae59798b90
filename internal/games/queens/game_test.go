package queens

import (
	"math/rand"
	"os"
	"path/filepath"
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

// placeSolution puts a queen on every solution cell, two presses each.
func placeSolution(t *testing.T, g *Game) {
	t.Helper()
	b := g.M.Puzzle()
	cols, ok := Solve(b.Regions)
	if !ok {
		t.Fatalf("puzzle %d has no solution", b.Index)
	}
	for row, col := range cols {
		i := row*b.Size() + col
		g.Cycle(i)
		g.Cycle(i)
	}
}

func TestDefaultPuzzlesSolvable(t *testing.T) {
	for i, regions := range config.DefaultQueensConfig().Puzzles {
		cols, ok := Solve(regions)
		if !ok {
			t.Errorf("puzzle %d has no solution", i+1)
			continue
		}

		b := Board{Regions: regions, Marks: make([]Mark, len(regions)*len(regions))}
		for row, col := range cols {
			b.Marks[row*len(regions)+col] = MarkQueen
		}
		if !b.Won() {
			t.Errorf("puzzle %d: solution %v is not a win", i+1, cols)
		}
	}
}

func TestSolveRejectsImpossible(t *testing.T) {
	regions := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	}
	if _, ok := Solve(regions); ok {
		t.Error("Solve() found a placement on a 3x3 board")
	}
}

func TestUnsolvableOverridesSkipped(t *testing.T) {
	rows3 := "  - [[0, 0, 0], [1, 1, 1], [2, 2, 2]]\n"
	rows4 := "  - [[0, 0, 0, 0], [1, 1, 1, 1], [2, 2, 2, 2], [3, 3, 3, 3]]\n"

	tests := []struct {
		name  string
		yaml  string
		sizes []int
	}{
		{"only unsolvable", "puzzles:\n" + rows3, nil},
		{"mixed", "puzzles:\n" + rows3 + rows4, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "queens.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml+"award:\n  base: 50\n"), 0o644); err != nil {
				t.Fatal(err)
			}

			g := New(registry.Deps{Tally: score.New(), ConfigPath: path})
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

			puzzles := g.rules.cfg.Puzzles
			if tt.sizes == nil {
				if len(puzzles) != len(config.DefaultQueensConfig().Puzzles) {
					t.Errorf("got %d puzzles, expected the defaults", len(puzzles))
				}
			} else {
				if len(puzzles) != len(tt.sizes) {
					t.Fatalf("got %d puzzles, expected %d", len(puzzles), len(tt.sizes))
				}
				for i, n := range tt.sizes {
					if len(puzzles[i]) != n {
						t.Errorf("puzzle %d is %dx%d, expected %dx%d", i, len(puzzles[i]), len(puzzles[i]), n, n)
					}
				}
			}
			for i, regions := range puzzles {
				if _, ok := Solve(regions); !ok {
					t.Errorf("puzzle %d served without a solution", i)
				}
			}
			if _, ok := Solve(g.M.Puzzle().Regions); !ok {
				t.Error("mounted board has no solution")
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	regions := config.DefaultQueensConfig().Puzzles[0]
	tests := []struct {
		name   string
		queens [][2]int
		want   []int
	}{
		{"single", [][2]int{{0, 0}}, nil},
		{"same row", [][2]int{{0, 0}, {0, 4}}, []int{0, 4}},
		{"same column", [][2]int{{0, 1}, {4, 1}}, []int{1, 21}},
		{"same region", [][2]int{{0, 2}, {2, 2}}, []int{2, 12}},
		{"diagonal touch", [][2]int{{1, 1}, {2, 2}}, []int{6, 12}},
		{"far apart", [][2]int{{0, 1}, {2, 4}}, nil},
	}
	for _, tc := range tests {
		b := Board{Regions: regions, Marks: make([]Mark, 25)}
		for _, q := range tc.queens {
			b.Marks[q[0]*5+q[1]] = MarkQueen
		}
		got := b.Conflicts()
		var idx []int
		for i, c := range got {
			if c {
				idx = append(idx, i)
			}
		}
		if len(idx) != len(tc.want) {
			t.Errorf("%s: conflicts %v, expected %v", tc.name, idx, tc.want)
			continue
		}
		for i := range idx {
			if idx[i] != tc.want[i] {
				t.Errorf("%s: conflicts %v, expected %v", tc.name, idx, tc.want)
				break
			}
		}
	}
}

func TestGenerateAvoidsRepeat(t *testing.T) {
	cfg := config.DefaultQueensConfig()
	rng := rand.New(rand.NewSource(1))

	b, err := Generate(rng, cfg, Board{})
	if err != nil {
		t.Fatal(err)
	}
	for trial := 0; trial < 10000; trial++ {
		next, err := Generate(rng, cfg, b)
		if err != nil {
			t.Fatal(err)
		}
		if next.Index == b.Index {
			t.Fatalf("trial %d: puzzle %d repeated", trial, b.Index)
		}
		b = next
	}
}

func TestMarkCycle(t *testing.T) {
	g, _ := newGame(t)
	want := []Mark{MarkX, MarkQueen, MarkEmpty}
	for _, m := range want {
		g.Cycle(7)
		if got := g.M.Puzzle().Marks[7]; got != m {
			t.Fatalf("mark = %d, expected %d", got, m)
		}
	}
}

func TestSolvingCompletesAndAdvances(t *testing.T) {
	g, tally := newGame(t)
	first := g.M.Puzzle().Index

	placeSolution(t, g)
	if g.M.Phase() != engine.PhaseComplete {
		t.Fatalf("Phase() = %s, expected complete", g.M.Phase())
	}
	if tally.Total() != 60 {
		t.Errorf("Total() = %d, expected 60", tally.Total())
	}

	g.Step(core.NewInputFrame(core.ActionNext))
	if g.M.Level() != 2 || g.M.Puzzle().Index == first {
		t.Fatalf("level=%d puzzle=%d after next", g.M.Level(), g.M.Puzzle().Index)
	}

	placeSolution(t, g)
	if tally.Total() != 130 {
		t.Errorf("Total() = %d, expected 130 after level 2", tally.Total())
	}
}

func TestClearRemovesMarks(t *testing.T) {
	g, _ := newGame(t)
	g.Cycle(0)
	g.Cycle(3)
	g.Cycle(3)

	g.Step(core.NewInputFrame(core.ActionClear))
	for i, m := range g.M.Puzzle().Marks {
		if m != MarkEmpty {
			t.Fatalf("cell %d still marked after clear", i)
		}
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t)
	g.Cycle(0)
	g.Cycle(0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "QUEENS") || !strings.Contains(out, "♛") {
		t.Error("render should include the title and the placed queen")
	}
}
