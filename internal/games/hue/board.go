// Package hue implements I Love Hue: restore a shuffled dark-to-light
// gradient by swapping tiles.
package hue

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
)

// Board holds the shade index shown at every position. The solved board
// has shade c in column c of every row.
type Board struct {
	Rows     int
	Cols     int
	Tiles    []int
	Selected int // position picked for a swap, -1 for none
	Moves    int
}

// Solved reports whether every position shows its column's shade.
func (b Board) Solved() bool {
	for i, shade := range b.Tiles {
		if shade != i%b.Cols {
			return false
		}
	}
	return true
}

// Size returns the board for a 1-based level, clamped to the ladder.
func Size(cfg config.HueConfig, level int) config.GridSize {
	return cfg.Levels[min(max(level-1, 0), len(cfg.Levels)-1)]
}

// Generate shuffles the gradient. A shuffle that is already solved is
// re-rolled.
func Generate(rng *rand.Rand, cfg config.HueConfig, level int) (Board, error) {
	size := Size(cfg, level)
	solved := make([]int, size.Rows*size.Cols)
	for i := range solved {
		solved[i] = i % size.Cols
	}

	b := Board{Rows: size.Rows, Cols: size.Cols, Selected: -1}
	tiles, err := engine.Reroll(func() []int {
		t := slices.Clone(solved)
		rng.Shuffle(len(t), func(i, j int) { t[i], t[j] = t[j], t[i] })
		return t
	}, func(t []int) bool {
		return !Board{Cols: size.Cols, Tiles: t}.Solved()
	})
	if err != nil {
		return Board{}, err
	}
	b.Tiles = tiles
	return b, nil
}

// Shade returns the colour of shade index c on a board with cols columns.
func Shade(cfg config.HueConfig, cols, c int) core.Color {
	step := cfg.Lightness.Span
	if cols > 1 {
		step /= float64(cols - 1)
	}
	return core.HSL(cfg.Hue, cfg.Saturation, cfg.Lightness.Min+float64(c)*step)
}
