// Package sequence implements Sequence Memory: watch tiles light up on a
// pad, then repeat them in order. Each level adds one tile.
package sequence

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/engine"
)

// Pattern is the sequence for one level and the player's progress in it.
type Pattern struct {
	Grid  int   // pad side length
	Tiles []int // tile indices in playback order
	Lit   int   // tile lit during playback, -1 for none
	Pos   int   // next index the player must press
}

// Length returns the sequence length for a level.
func Length(cfg config.SequenceConfig, level int) int {
	return cfg.StartLength + level - 1
}

// Generate builds the pattern for a level. When prev is one tile shorter
// it is extended, so the sequence grows instead of being replaced.
func Generate(rng *rand.Rand, cfg config.SequenceConfig, level int, prev Pattern) Pattern {
	n := cfg.GridSize * cfg.GridSize
	want := Length(cfg, level)

	var tiles []int
	if len(prev.Tiles) == want-1 {
		tiles = slices.Clone(prev.Tiles)
	}
	for len(tiles) < want {
		tiles = append(tiles, rng.Intn(n))
	}

	return Pattern{Grid: cfg.GridSize, Tiles: tiles, Lit: -1}
}

// Playback returns the presentation steps for a pattern.
func Playback(cfg config.SequenceConfig, level int, tiles []int) []engine.Step[Pattern] {
	delay := cfg.Delay(level)
	lit := time.Duration(float64(delay) * cfg.LitRatio)

	steps := make([]engine.Step[Pattern], 0, 2*len(tiles))
	for _, tile := range tiles {
		steps = append(steps,
			engine.Step[Pattern]{Delay: delay, Apply: func(p *Pattern) { p.Lit = tile }},
			engine.Step[Pattern]{Delay: lit, Apply: func(p *Pattern) { p.Lit = -1 }},
		)
	}
	return steps
}
