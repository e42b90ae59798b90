// Package queens implements the Queens region puzzle: one queen per row,
// column and colour region, and no two queens touching.
package queens

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/engine"
)

// Mark is what the player has put on a cell.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkQueen
)

// Next cycles empty -> x -> queen -> empty.
func (m Mark) Next() Mark {
	return (m + 1) % 3
}

// Board is one puzzle and the player's marks on it.
type Board struct {
	Index   int     // puzzle number in the config
	Regions [][]int // region id per cell
	Marks   []Mark  // row-major
}

// Size returns the side length.
func (b Board) Size() int { return len(b.Regions) }

func (b Board) queens() [][2]int {
	n := b.Size()
	var qs [][2]int
	for i, m := range b.Marks {
		if m == MarkQueen {
			qs = append(qs, [2]int{i / n, i % n})
		}
	}
	return qs
}

func (b Board) clash(p, q [2]int) bool {
	dr, dc := abs(p[0]-q[0]), abs(p[1]-q[1])
	return p[0] == q[0] || p[1] == q[1] ||
		b.Regions[p[0]][p[1]] == b.Regions[q[0]][q[1]] ||
		(dr <= 1 && dc <= 1)
}

// Conflicts marks every queen that shares a row, column or region with
// another queen or touches one, diagonals included.
func (b Board) Conflicts() []bool {
	n := b.Size()
	out := make([]bool, n*n)
	qs := b.queens()
	for i := range qs {
		for j := i + 1; j < len(qs); j++ {
			if b.clash(qs[i], qs[j]) {
				out[qs[i][0]*n+qs[i][1]] = true
				out[qs[j][0]*n+qs[j][1]] = true
			}
		}
	}
	return out
}

// Won reports whether exactly n queens stand without any conflict.
func (b Board) Won() bool {
	qs := b.queens()
	if len(qs) != b.Size() {
		return false
	}
	return !slices.Contains(b.Conflicts(), true)
}

// Solve returns the queen column for every row, or false when the
// regions admit no placement.
func Solve(regions [][]int) ([]int, bool) {
	n := len(regions)
	cols := make([]int, 0, n)
	used := make(map[int]bool)

	var place func(row int) bool
	place = func(row int) bool {
		if row == n {
			return true
		}
		for c := range n {
			region := regions[row][c]
			if used[region] || slices.Contains(cols, c) {
				continue
			}
			if row > 0 && abs(cols[row-1]-c) <= 1 {
				continue
			}
			cols = append(cols, c)
			used[region] = true
			if place(row + 1) {
				return true
			}
			cols = cols[:row]
			used[region] = false
		}
		return false
	}

	if !place(0) {
		return nil, false
	}
	return cols, true
}

// Generate picks a puzzle at random, never the one in prev when the
// config has more than one.
func Generate(rng *rand.Rand, cfg config.QueensConfig, prev Board) (Board, error) {
	index, err := engine.Reroll(func() int {
		return rng.Intn(len(cfg.Puzzles))
	}, func(i int) bool {
		return prev.Regions == nil || len(cfg.Puzzles) == 1 || i != prev.Index
	})
	if err != nil {
		return Board{}, err
	}

	regions := cfg.Puzzles[index]
	n := len(regions)
	return Board{Index: index, Regions: regions, Marks: make([]Mark, n*n)}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
