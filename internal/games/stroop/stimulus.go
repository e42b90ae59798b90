// Package stroop implements the Stroop test: name the ink (or border)
// colour while the word says something else.
package stroop

import (
	"math/rand"

	"github.com/vovakirdan/mindflex/internal/core"
)

// Mode selects what the player answers.
type Mode string

const (
	ModeWord  Mode = "word"  // the ink colour of a colour word
	ModeShape Mode = "shape" // the border colour of a shape
)

// Ink is one answer colour.
type Ink struct {
	Name  string
	Color core.Color
}

// Inks are the answer buttons, in key order 1..5.
var Inks = []Ink{
	{"RED", core.HSL(0, 72, 50)},
	{"BLUE", core.HSL(200, 98, 39)},
	{"GREEN", core.HSL(142, 71, 45)},
	{"YELLOW", core.HSL(48, 96, 53)},
	{"BLACK", core.HSL(0, 0, 30)},
}

// Shape is the outline drawn in shape mode.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
	shapeCount
)

// Stimulus is one question plus the running answer counts.
type Stimulus struct {
	Mode   Mode
	Answer int // index into Inks: ink in word mode, border in shape mode
	Word   int
	Fill   int
	Shape  Shape

	Correct int
	Wrong   int
}

// Generate draws a stimulus. With probability rate each distractor is
// forced to differ from the answer; otherwise it is drawn freely.
func Generate(rng *rand.Rand, mode Mode, rate float64, prev Stimulus) Stimulus {
	n := len(Inks)
	s := Stimulus{
		Mode:    mode,
		Answer:  rng.Intn(n),
		Correct: prev.Correct,
		Wrong:   prev.Wrong,
	}
	s.Word = distractor(rng, n, s.Answer, rate)
	if mode == ModeShape {
		s.Fill = distractor(rng, n, s.Answer, rate)
		s.Shape = Shape(rng.Intn(int(shapeCount)))
	}
	return s
}

func distractor(rng *rand.Rand, n, answer int, rate float64) int {
	if rng.Float64() < rate {
		return (answer + 1 + rng.Intn(n-1)) % n
	}
	return rng.Intn(n)
}
