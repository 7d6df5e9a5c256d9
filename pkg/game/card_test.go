package game

import "testing"

func TestCardValuations(t *testing.T) {
	tests := []struct {
		name   string
		card   Card
		dealer int
		flex   int
	}{
		{"ace", Card{Rank: Ace, Suit: 0}, 11, 1},
		{"two", Card{Rank: 2, Suit: 1}, 2, 2},
		{"ten", Card{Rank: 10, Suit: 2}, 10, 10},
		{"jack", Card{Rank: Jack, Suit: 3}, 10, 10},
		{"queen", Card{Rank: Queen, Suit: 0}, 10, 10},
		{"king", Card{Rank: King, Suit: 1}, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.DealerValue(); got != tt.dealer {
				t.Errorf("DealerValue = %d, want %d", got, tt.dealer)
			}
			if got := tt.card.FlexValue(); got != tt.flex {
				t.Errorf("FlexValue = %d, want %d", got, tt.flex)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Rank: Ace, Suit: Heart}, "A♥"},
		{Card{Rank: 10, Suit: Spade}, "10♠"},
		{Card{Rank: Queen, Suit: Diamond}, "Q♦"},
		{Card{Rank: 0, Suit: 0}, "??"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.card, got, tt.want)
		}
	}
}

func TestHandTotal(t *testing.T) {
	h := Hand{{Rank: Ace}, {Rank: King}, {Rank: 5}}
	if got := h.Total(Card.DealerValue); got != 26 {
		t.Errorf("dealer total = %d, want 26", got)
	}
	if got := h.Total(Card.FlexValue); got != 16 {
		t.Errorf("flex total = %d, want 16", got)
	}
}
