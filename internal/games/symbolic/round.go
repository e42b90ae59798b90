// Package symbolic implements Symbolic Savings: work out which of two
// characters holds the more valuable pile of symbols.
package symbolic

import (
	"math/rand"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
)

// Symbol is a kind of valuable.
type Symbol struct {
	Name  string
	Glyph string
	Color core.Color
}

// Symbols lists every valuable; a round assigns each a value.
var Symbols = []Symbol{
	{"Coin", "●", core.ColorYellow},
	{"Gem", "◆", core.ColorCyan},
	{"Crown", "♛", core.ColorOrange},
	{"Star", "★", core.ColorPurple},
	{"Bolt", "ϟ", core.ColorBlue},
}

// Item is a stack of one symbol.
type Item struct {
	Symbol int
	Count  int
}

// Character owns a few stacks.
type Character struct {
	Items []Item
	Total int
}

// Side names a character.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Round is one comparison plus the streak carried between rounds.
type Round struct {
	Values   []int // value of each symbol this round
	Left     Character
	Right    Character
	Revealed bool
	Streak   int
}

// Richer returns the side with the larger total.
func (r Round) Richer() Side {
	if r.Left.Total > r.Right.Total {
		return SideLeft
	}
	return SideRight
}

// Generate draws symbol values and two characters whose totals differ.
// The right character is re-rolled until it does.
func Generate(rng *rand.Rand, cfg config.SymbolicConfig, prev Round) (Round, error) {
	values := make([]int, len(Symbols))
	for i := range values {
		values[i] = 1 + rng.Intn(cfg.MaxValue)
	}

	left := character(rng, cfg, values)
	right, err := engine.Reroll(func() Character {
		return character(rng, cfg, values)
	}, func(c Character) bool {
		return c.Total != left.Total
	})
	if err != nil {
		return Round{}, err
	}

	return Round{Values: values, Left: left, Right: right, Streak: prev.Streak}, nil
}

func character(rng *rand.Rand, cfg config.SymbolicConfig, values []int) Character {
	var c Character
	for range 1 + rng.Intn(cfg.MaxItems) {
		it := Item{Symbol: rng.Intn(len(Symbols)), Count: 1 + rng.Intn(cfg.MaxCount)}
		c.Items = append(c.Items, it)
		c.Total += values[it.Symbol] * it.Count
	}
	return c
}
