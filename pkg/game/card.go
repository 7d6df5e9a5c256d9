package game

// Suits, in wire order. The suit byte on the wire indexes this order.
const (
	Heart uint8 = iota
	Diamond
	Club
	Spade
)

// Named ranks. Ranks 2–10 are their face value.
const (
	Ace   uint8 = 1
	Jack  uint8 = 11
	Queen uint8 = 12
	King  uint8 = 13
)

var (
	suitSymbols = [4]string{"♥", "♦", "♣", "♠"}
	rankNames   = [14]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Card is a playing card. The zero value is not a valid card, which lets
// callers use it as a "no card" placeholder.
type Card struct {
	Rank uint8 // 1–13, 1=Ace, 11/12/13=Jack/Queen/King
	Suit uint8 // 0–3
}

// Valid reports whether rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank >= 1 && c.Rank <= 13 && c.Suit <= 3
}

// DealerValue is the valuation the round engine uses: Ace counts 11,
// face cards count 10.
func (c Card) DealerValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// FlexValue is the valuation the client and bridge use: Ace counts 1,
// face cards count 10. The two ends of the protocol score hands under
// different valuations; both are load-bearing.
func (c Card) FlexValue() int {
	switch {
	case c.Rank == Ace:
		return 1
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// String renders the card as rank name plus suit symbol, e.g. "A♥" or "10♠".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return rankNames[c.Rank] + suitSymbols[c.Suit]
}

// RankName returns the display name of the rank ("A", "2", …, "K").
func (c Card) RankName() string {
	if c.Rank < 1 || c.Rank > 13 {
		return "?"
	}
	return rankNames[c.Rank]
}

// SuitSymbol returns the display symbol of the suit.
func (c Card) SuitSymbol() string {
	if c.Suit > 3 {
		return "?"
	}
	return suitSymbols[c.Suit]
}
