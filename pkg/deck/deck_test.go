package deck

import (
	"testing"

	"github.com/t-rays/Blackijecky/pkg/game"
)

func TestDrawAllCardsNoDuplicates(t *testing.T) {
	d := NewSeeded(1, 2)
	seen := make(map[game.Card]bool, Size)
	for i := 0; i < Size; i++ {
		c := d.Draw()
		if !c.Valid() {
			t.Fatalf("draw %d returned invalid card %+v", i, c)
		}
		if seen[c] {
			t.Fatalf("duplicate card %v at draw %d", c, i)
		}
		seen[c] = true
	}
	if d.Len() != 0 {
		t.Errorf("deck length after 52 draws = %d, want 0", d.Len())
	}
}

func TestDrawReshufflesWhenExhausted(t *testing.T) {
	d := NewSeeded(3, 4)
	for i := 0; i < Size; i++ {
		d.Draw()
	}

	// The 53rd draw must succeed off a silently rebuilt deck.
	c := d.Draw()
	if !c.Valid() {
		t.Fatalf("post-reshuffle draw returned invalid card %+v", c)
	}
	if d.Len() != Size-1 {
		t.Errorf("deck length after reshuffle draw = %d, want %d", d.Len(), Size-1)
	}
}

func TestSeededDecksAreReproducible(t *testing.T) {
	a, b := NewSeeded(7, 9), NewSeeded(7, 9)
	for i := 0; i < Size; i++ {
		if ca, cb := a.Draw(), b.Draw(); ca != cb {
			t.Fatalf("seeded decks diverged at draw %d: %v != %v", i, ca, cb)
		}
	}
}
