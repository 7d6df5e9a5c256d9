package game

// Valuation maps a card to its point value. The engine uses
// Card.DealerValue, the client and bridge use Card.FlexValue.
type Valuation func(Card) int

// Hand is an ordered, append-only sequence of cards. It is reset by
// replacing it with a fresh Hand at round start.
type Hand []Card

// Add appends a card to the hand.
func (h *Hand) Add(c Card) {
	*h = append(*h, c)
}

// Total sums the hand under the given valuation.
func (h Hand) Total(value Valuation) int {
	total := 0
	for _, c := range h {
		total += value(c)
	}
	return total
}
