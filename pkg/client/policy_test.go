package client

import (
	"testing"

	"github.com/t-rays/Blackijecky/pkg/game"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

func TestFixedPolicy(t *testing.T) {
	dealerUp := game.Card{Rank: game.Ace, Suit: 0}
	tests := []struct {
		total int
		want  string
	}{
		{0, protocol.DecisionHit},
		{12, protocol.DecisionHit},
		{16, protocol.DecisionHit},
		{17, protocol.DecisionStand},
		{21, protocol.DecisionStand},
	}
	for _, tt := range tests {
		if got := FixedPolicy(tt.total, dealerUp); got != tt.want {
			t.Errorf("FixedPolicy(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestFixedPolicyIgnoresDealerCard(t *testing.T) {
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(1); rank <= 13; rank++ {
			if got := FixedPolicy(16, game.Card{Rank: rank, Suit: suit}); got != protocol.DecisionHit {
				t.Fatalf("policy varied with dealer card %d/%d", rank, suit)
			}
		}
	}
}
