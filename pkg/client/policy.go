package client

import (
	"github.com/t-rays/Blackijecky/pkg/game"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

// StandThreshold is the fixed policy cutoff: hit below it, stand at or
// above it.
const StandThreshold = 17

// Policy decides protocol.DecisionHit or protocol.DecisionStand given
// the running total (flexible valuation, Ace=1) and the dealer's visible
// card.
type Policy func(playerTotal int, dealerUp game.Card) string

// FixedPolicy is the default strategy: hit while the total is below 17.
// The dealer's visible card is part of the hook signature but does not
// influence the decision.
func FixedPolicy(playerTotal int, dealerUp game.Card) string {
	if playerTotal < StandThreshold {
		return protocol.DecisionHit
	}
	return protocol.DecisionStand
}
