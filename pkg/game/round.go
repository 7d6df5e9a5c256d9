package game

import "errors"

// Game thresholds.
const (
	// BustLimit is the total above which a hand busts.
	BustLimit = 21

	// DealerStand is the dealer's stand threshold. The dealer draws
	// while strictly below it; exactly 17 stops.
	DealerStand = 17
)

// CardSource supplies cards to a round. *deck.Deck satisfies it.
type CardSource interface {
	Draw() Card
}

// RoundState tracks where a round is in its lifecycle.
type RoundState uint8

const (
	Dealing RoundState = iota
	PlayerTurn
	DealerTurn
	Resolved
)

// String returns the string representation of the round state.
func (s RoundState) String() string {
	switch s {
	case Dealing:
		return "Dealing"
	case PlayerTurn:
		return "PlayerTurn"
	case DealerTurn:
		return "DealerTurn"
	case Resolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// Round state machine errors.
var ErrBadState = errors.New("game: operation not valid in current round state")

// Round is the server-side authority for a single round of blackjack.
// It is created fresh per round over a card source that persists across
// the rounds of a session; there is no reset.
//
// Totals use the dealer-side valuation (Ace=11, face=10).
type Round struct {
	src    CardSource
	state  RoundState
	player Hand
	dealer Hand
}

// NewRound creates a round over the given card source.
func NewRound(src CardSource) *Round {
	return &Round{src: src, state: Dealing}
}

// State returns the round's current state.
func (r *Round) State() RoundState { return r.state }

// Player returns the player hand.
func (r *Round) Player() Hand { return r.player }

// Dealer returns the dealer hand. Dealer[1] is the hole card; the engine
// never sends it before the dealer's turn.
func (r *Round) Dealer() Hand { return r.dealer }

// PlayerTotal returns the player total under the engine valuation.
func (r *Round) PlayerTotal() int { return r.player.Total(Card.DealerValue) }

// DealerTotal returns the dealer total under the engine valuation.
func (r *Round) DealerTotal() int { return r.dealer.Total(Card.DealerValue) }

// Deal draws two cards for the player and two for the dealer and moves to
// PlayerTurn. It returns the three cards the client is shown: the two
// player cards and the dealer's visible first card.
func (r *Round) Deal() (p1, p2, dealerUp Card, err error) {
	if r.state != Dealing {
		return Card{}, Card{}, Card{}, ErrBadState
	}
	r.player = Hand{r.src.Draw(), r.src.Draw()}
	r.dealer = Hand{r.src.Draw(), r.src.Draw()}
	r.state = PlayerTurn
	return r.player[0], r.player[1], r.dealer[0], nil
}

// Hit draws one card for the player. On bust the round resolves
// immediately; the dealer's turn is skipped entirely.
func (r *Round) Hit() (c Card, total int, bust bool, err error) {
	if r.state != PlayerTurn {
		return Card{}, 0, false, ErrBadState
	}
	c = r.src.Draw()
	r.player.Add(c)
	total = r.PlayerTotal()
	if total > BustLimit {
		r.state = Resolved
		return c, total, true, nil
	}
	return c, total, false, nil
}

// Stand ends the player's turn.
func (r *Round) Stand() error {
	if r.state != PlayerTurn {
		return ErrBadState
	}
	r.state = DealerTurn
	return nil
}

// HoleCard returns the dealer's hidden second card. It is only
// meaningful once the dealer's turn has begun.
func (r *Round) HoleCard() Card { return r.dealer[1] }

// DealerPlay runs the dealer policy: draw while the dealer total is
// strictly below DealerStand. It returns the cards drawn, in order, and
// resolves the round.
func (r *Round) DealerPlay() ([]Card, error) {
	if r.state != DealerTurn {
		return nil, ErrBadState
	}
	var drawn []Card
	for r.DealerTotal() < DealerStand {
		c := r.src.Draw()
		r.dealer.Add(c)
		drawn = append(drawn, c)
	}
	r.state = Resolved
	return drawn, nil
}

// Outcome decides the round from the player's perspective: a player bust
// is a Loss regardless of the dealer; a dealer bust is a Win; otherwise
// the higher total wins and equal totals tie.
func (r *Round) Outcome() Result {
	return DetermineWinner(r.PlayerTotal(), r.DealerTotal())
}

// DetermineWinner applies the outcome rules to bare totals.
func DetermineWinner(playerTotal, dealerTotal int) Result {
	switch {
	case playerTotal > BustLimit:
		return Loss
	case dealerTotal > BustLimit:
		return Win
	case playerTotal > dealerTotal:
		return Win
	case dealerTotal > playerTotal:
		return Loss
	default:
		return Tie
	}
}
