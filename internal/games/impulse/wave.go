// Package impulse implements Impulse Control: hit the green circle, hold
// back on everything else.
package impulse

import (
	"math/rand"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
)

// Mode selects how many shapes a round shows.
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeAdvanced Mode = "advanced"
)

// Kind is a shape outline.
type Kind int

const (
	KindCircle Kind = iota
	KindSquare
	KindTriangle
	kindCount
)

// Glyph returns the rune drawn for a kind.
func (k Kind) Glyph() string {
	switch k {
	case KindCircle:
		return "●"
	case KindSquare:
		return "■"
	default:
		return "▲"
	}
}

// Colors are the shape colours; index 0 is the target green.
var Colors = []core.Color{
	core.HSL(142, 71, 45),
	core.HSL(0, 72, 50),
	core.HSL(200, 98, 39),
	core.HSL(48, 96, 53),
}

// Shape is one figure on screen.
type Shape struct {
	Kind  Kind
	Color int // index into Colors
}

// Target reports whether s is a green circle.
func (s Shape) Target() bool {
	return s.Kind == KindCircle && s.Color == 0
}

// Wave is the set of shapes for one round plus the running counts.
type Wave struct {
	Mode    Mode
	Shapes  []Shape
	Clicked int // shape the player hit, -1 for none
	Hits    int
	Misses  int
}

func (w *Wave) tally(hit bool) {
	if hit {
		w.Hits++
	} else {
		w.Misses++
	}
}

// HasTarget reports whether any shape is a target.
func (w Wave) HasTarget() bool {
	for _, s := range w.Shapes {
		if s.Target() {
			return true
		}
	}
	return false
}

// Generate draws a wave. Basic mode shows one shape that is the target
// with probability TargetRate and never green otherwise. Advanced mode
// shows MinShapes..MaxShapes shapes with a planted target with
// probability AdvancedTargetRate; the rest are drawn freely and may be
// targets too.
func Generate(rng *rand.Rand, cfg config.ImpulseConfig, mode Mode, prev Wave) Wave {
	w := Wave{Mode: mode, Clicked: -1, Hits: prev.Hits, Misses: prev.Misses}

	if mode != ModeAdvanced {
		s := Shape{Kind: KindCircle, Color: 0}
		if rng.Float64() >= cfg.TargetRate {
			s = Shape{Kind: Kind(rng.Intn(int(kindCount))), Color: 1 + rng.Intn(len(Colors)-1)}
		}
		w.Shapes = []Shape{s}
		return w
	}

	n := cfg.MinShapes + rng.Intn(cfg.MaxShapes-cfg.MinShapes+1)
	planted := rng.Float64() < cfg.AdvancedTargetRate
	for i := range n {
		if i == 0 && planted {
			w.Shapes = append(w.Shapes, Shape{Kind: KindCircle, Color: 0})
			continue
		}
		w.Shapes = append(w.Shapes, Shape{Kind: Kind(rng.Intn(int(kindCount))), Color: rng.Intn(len(Colors))})
	}
	rng.Shuffle(len(w.Shapes), func(i, j int) { w.Shapes[i], w.Shapes[j] = w.Shapes[j], w.Shapes[i] })
	return w
}
