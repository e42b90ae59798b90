// Package schulte implements the Schulte table: find the numbers 1..n² in
// order as fast as possible.
package schulte

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/engine"
)

// Table is a shuffled grid of the numbers 1..Size².
type Table struct {
	Size    int
	Numbers []int
	Next    int           // number the player must find
	Started bool          // the clock runs from the first click
	StartAt time.Duration // machine time of the first click
}

// Cleared reports whether n has already been found.
func (t Table) Cleared(n int) bool {
	return n < t.Next
}

// Generate shuffles a fresh table. The identity layout is re-rolled.
func Generate(rng *rand.Rand, size int) (Table, error) {
	n := size * size
	numbers, err := engine.Reroll(func() []int {
		perm := rng.Perm(n)
		for i := range perm {
			perm[i]++
		}
		return perm
	}, func(perm []int) bool {
		for i, v := range perm {
			if v != i+1 {
				return true
			}
		}
		return false
	})
	if err != nil {
		return Table{}, err
	}
	return Table{Size: size, Numbers: numbers, Next: 1}, nil
}

// ShuffleRemaining permutes the numbers greater than after among the
// positions they occupy. Found numbers stay where they are.
func ShuffleRemaining(rng *rand.Rand, numbers []int, after int) {
	var pos []int
	for i, v := range numbers {
		if v > after {
			pos = append(pos, i)
		}
	}
	rng.Shuffle(len(pos), func(i, j int) {
		numbers[pos[i]], numbers[pos[j]] = numbers[pos[j]], numbers[pos[i]]
	})
}

// Points returns the award for finishing in elapsed, counted in whole
// seconds rounded to the nearest.
func Points(s config.SchulteScoring, elapsed time.Duration) (seconds, points int) {
	seconds = int(math.Round(elapsed.Seconds()))
	return seconds, max(s.Base-s.PerSecond*seconds, s.Min)
}
