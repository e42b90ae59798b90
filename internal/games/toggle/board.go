// Package toggle implements Color Toggle: flip every target-colored cell
// to the goal color before the level's countdown runs out.
package toggle

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
)

// Swatch is a named color.
type Swatch struct {
	Name  string
	Color core.Color
}

// ColorPair is the target color cells start in and the goal color they
// flip to.
type ColorPair struct {
	Target Swatch
	Goal   Swatch
}

var pairs = []ColorPair{
	{Swatch{"RED", core.ColorRed}, Swatch{"GREEN", core.ColorGreen}},
	{Swatch{"BLUE", core.ColorBlue}, Swatch{"YELLOW", core.ColorYellow}},
	{Swatch{"PURPLE", core.ColorPurple}, Swatch{"ORANGE", core.ColorOrange}},
	{Swatch{"TEAL", core.ColorTeal}, Swatch{"PINK", core.ColorPink}},
}

// PairFor returns the color pair used on a 1-based level.
func PairFor(level int) ColorPair {
	return pairs[(max(level, 1)-1)%len(pairs)]
}

// Board is one level of Color Toggle.
type Board struct {
	Size      int
	Cells     []bool // true while the cell still shows the target color
	Remaining int
	Limit     time.Duration
	Pair      ColorPair
}

// TargetBounds returns the inclusive range of target counts for n cells.
func TargetBounds(n int, cfg config.ToggleConfig) (lo, hi int) {
	lo = max(int(math.Ceil(cfg.MinTargetRatio*float64(n))), 1)
	hi = max(int(math.Floor(cfg.MaxTargetRatio*float64(n))), lo)
	return lo, min(hi, n)
}

// Generate builds the board for a level.
func Generate(rng *rand.Rand, cfg config.ToggleConfig, level int) Board {
	rung := cfg.Level(level)
	n := rung.Size * rung.Size
	lo, hi := TargetBounds(n, cfg)
	k := lo + rng.Intn(hi-lo+1)

	cells := make([]bool, n)
	for _, i := range rng.Perm(n)[:k] {
		cells[i] = true
	}

	return Board{
		Size:      rung.Size,
		Cells:     cells,
		Remaining: k,
		Limit:     time.Duration(rung.Seconds) * time.Second,
		Pair:      PairFor(level),
	}
}

// Rate grades a cleared board by the share of the limit used.
func Rate(elapsed, limit time.Duration, level int) (label string, points int) {
	ratio := float64(elapsed) / float64(limit)
	switch {
	case ratio < 0.4:
		return "Excellent!", 50 + 15*level
	case ratio < 0.7:
		return "Very Good!", 30 + 10*level
	default:
		return "Good!", 20 + 5*level
	}
}
