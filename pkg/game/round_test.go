package game

import (
	"errors"
	"testing"
)

// scriptedSource deals a fixed card sequence.
type scriptedSource struct {
	cards []Card
	next  int
}

func (s *scriptedSource) Draw() Card {
	c := s.cards[s.next]
	s.next++
	return c
}

func src(ranks ...uint8) *scriptedSource {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card{Rank: r, Suit: uint8(i % 4)}
	}
	return &scriptedSource{cards: cards}
}

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		player, dealer int
		want           Result
	}{
		{22, 15, Loss},
		{18, 22, Win},
		{20, 18, Win},
		{16, 18, Loss},
		{18, 18, Tie},
		{21, 21, Tie},
		{22, 22, Loss}, // player bust decided first
	}
	for _, tt := range tests {
		if got := DetermineWinner(tt.player, tt.dealer); got != tt.want {
			t.Errorf("DetermineWinner(%d, %d) = %v, want %v", tt.player, tt.dealer, got, tt.want)
		}
	}
}

func TestDealMovesToPlayerTurn(t *testing.T) {
	r := NewRound(src(10, 7, 9, 6))
	p1, p2, up, err := r.Deal()
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if p1.Rank != 10 || p2.Rank != 7 || up.Rank != 9 {
		t.Errorf("dealt cards %v %v %v, want ranks 10 7 9", p1, p2, up)
	}
	if r.State() != PlayerTurn {
		t.Errorf("state = %v, want PlayerTurn", r.State())
	}
	if r.PlayerTotal() != 17 || r.DealerTotal() != 15 {
		t.Errorf("totals = %d/%d, want 17/15", r.PlayerTotal(), r.DealerTotal())
	}
	if _, _, _, err := r.Deal(); !errors.Is(err, ErrBadState) {
		t.Errorf("second Deal error = %v, want ErrBadState", err)
	}
}

func TestHitBustSkipsDealer(t *testing.T) {
	// Player 10+7, dealer 9+6, hit draws a 10: 27, immediate loss.
	r := NewRound(src(10, 7, 9, 6, 10))
	if _, _, _, err := r.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	c, total, bust, err := r.Hit()
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	if c.Rank != 10 || total != 27 || !bust {
		t.Errorf("Hit = (%v, %d, %v), want rank 10, 27, bust", c, total, bust)
	}
	if r.State() != Resolved {
		t.Errorf("state after bust = %v, want Resolved", r.State())
	}
	if _, err := r.DealerPlay(); !errors.Is(err, ErrBadState) {
		t.Errorf("DealerPlay after bust error = %v, want ErrBadState", err)
	}
	if got := r.Outcome(); got != Loss {
		t.Errorf("Outcome = %v, want Loss", got)
	}
}

func TestAceElevenCanBustTheEngine(t *testing.T) {
	// Ace+King is 21 under the engine valuation; another ace busts at 32.
	r := NewRound(src(1, 13, 5, 5, 1))
	if _, _, _, err := r.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	_, total, bust, err := r.Hit()
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	if total != 32 || !bust {
		t.Errorf("Hit total = %d bust = %v, want 32 true", total, bust)
	}
}

func TestDealerStandsAtThreshold(t *testing.T) {
	tests := []struct {
		name      string
		ranks     []uint8 // p1 p2 d1 d2, then dealer draws
		wantDrawn int
		wantTotal int
	}{
		{"stands_at_17", []uint8{5, 5, 10, 7}, 0, 17},
		{"stands_above_17", []uint8{5, 5, 10, 10}, 0, 20},
		{"draws_below_17", []uint8{5, 5, 10, 6, 5}, 1, 21},
		{"draws_repeatedly", []uint8{5, 5, 2, 2, 2, 2, 2, 2, 2, 3}, 6, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRound(src(tt.ranks...))
			if _, _, _, err := r.Deal(); err != nil {
				t.Fatalf("Deal: %v", err)
			}
			if err := r.Stand(); err != nil {
				t.Fatalf("Stand: %v", err)
			}
			drawn, err := r.DealerPlay()
			if err != nil {
				t.Fatalf("DealerPlay: %v", err)
			}
			if len(drawn) != tt.wantDrawn {
				t.Errorf("dealer drew %d cards, want %d", len(drawn), tt.wantDrawn)
			}
			if r.DealerTotal() != tt.wantTotal {
				t.Errorf("dealer total = %d, want %d", r.DealerTotal(), tt.wantTotal)
			}
			if r.State() != Resolved {
				t.Errorf("state = %v, want Resolved", r.State())
			}
		})
	}
}

func TestFullRoundOutcome(t *testing.T) {
	// Player 10+9 stands on 19; dealer 10+6 draws a 2 for 18. Player wins.
	r := NewRound(src(10, 9, 10, 6, 2))
	if _, _, _, err := r.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if err := r.Stand(); err != nil {
		t.Fatalf("Stand: %v", err)
	}
	if r.HoleCard().Rank != 6 {
		t.Errorf("hole card rank = %d, want 6", r.HoleCard().Rank)
	}
	if _, err := r.DealerPlay(); err != nil {
		t.Fatalf("DealerPlay: %v", err)
	}
	if got := r.Outcome(); got != Win {
		t.Errorf("Outcome = %v, want Win", got)
	}
}
