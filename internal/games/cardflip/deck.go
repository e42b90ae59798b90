// Package cardflip implements Card Flip, the classic pairs memory game.
package cardflip

import (
	"math/rand"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
)

// Face is a card picture.
type Face struct {
	Glyph string
	Color core.Color
}

// Faces is the symbol pool pairs are drawn from.
var Faces = []Face{
	{"♠", core.ColorWhite}, {"♥", core.ColorRed}, {"♦", core.ColorOrange}, {"♣", core.ColorGreen},
	{"★", core.ColorYellow}, {"☀", core.ColorYellow}, {"☂", core.ColorBlue}, {"☃", core.ColorCyan},
	{"♫", core.ColorPink}, {"✿", core.ColorMagenta}, {"☘", core.ColorBrightGreen}, {"⚓", core.ColorTeal},
	{"✈", core.ColorWhite}, {"♞", core.ColorPurple}, {"☯", core.ColorGray}, {"⚑", core.ColorBrightRed},
	{"✦", core.ColorCyan}, {"❖", core.ColorOrange}, {"♪", core.ColorBlue}, {"☾", core.ColorYellow},
}

// Card is one card on the table.
type Card struct {
	Face    int // index into Faces
	Matched bool
}

// Deck is the table for one level.
type Deck struct {
	Cols  int
	Cards []Card
	Up    []int // face-up cards that are not matched yet, at most two
	Moves int
	Pairs int // pairs found
}

// Shown reports whether card i is face up.
func (d Deck) Shown(i int) bool {
	if d.Cards[i].Matched {
		return true
	}
	for _, u := range d.Up {
		if u == i {
			return true
		}
	}
	return false
}

// Cleared reports whether every pair is found.
func (d Deck) Cleared() bool {
	return d.Pairs*2 == len(d.Cards)
}

// Count returns the card count for a 1-based level, clamped to the ladder.
func Count(cfg config.CardFlipConfig, level int) int {
	return cfg.Levels[min(max(level-1, 0), len(cfg.Levels)-1)]
}

// Generate deals a shuffled deck of distinct pairs.
func Generate(rng *rand.Rand, cfg config.CardFlipConfig, level int) Deck {
	pairs := min(Count(cfg, level)/2, len(Faces))
	faces := rng.Perm(len(Faces))[:pairs]

	cards := make([]Card, 0, 2*pairs)
	for _, f := range faces {
		cards = append(cards, Card{Face: f}, Card{Face: f})
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	return Deck{Cols: cfg.Columns, Cards: cards}
}
