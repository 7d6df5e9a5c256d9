// Package deck provides a shuffled 52-card deck with silent reshuffle on
// exhaustion.
package deck

import (
	"math/rand/v2"

	"github.com/t-rays/Blackijecky/pkg/game"
)

// Size is the number of cards in a full deck.
const Size = 52

// Deck is a shuffled multiset of the 52 rank×suit combinations. Drawing
// from an empty deck silently rebuilds and reshuffles a fresh deck
// first; the boundary between old and new deck is invisible to callers.
//
// A Deck is not safe for concurrent use. Each game session owns its own.
type Deck struct {
	cards []game.Card
	rng   *rand.Rand
}

// New returns a freshly shuffled deck.
func New() *Deck {
	return NewSeeded(rand.Uint64(), rand.Uint64())
}

// NewSeeded returns a deck shuffled with a deterministic source. Useful
// in tests.
func NewSeeded(seed1, seed2 uint64) *Deck {
	d := &Deck{rng: rand.New(rand.NewPCG(seed1, seed2))}
	d.reset()
	return d
}

func (d *Deck) reset() {
	d.cards = d.cards[:0]
	for rank := uint8(1); rank <= 13; rank++ {
		for suit := uint8(0); suit < 4; suit++ {
			d.cards = append(d.cards, game.Card{Rank: rank, Suit: suit})
		}
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card, reshuffling a full deck first
// if this one is exhausted.
func (d *Deck) Draw() game.Card {
	if len(d.cards) == 0 {
		d.reset()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}
