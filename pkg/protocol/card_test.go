package protocol

import (
	"testing"

	"github.com/t-rays/Blackijecky/pkg/game"
)

func TestCardRoundTrip(t *testing.T) {
	for rank := uint8(1); rank <= 13; rank++ {
		for suit := uint8(0); suit < 4; suit++ {
			in := game.Card{Rank: rank, Suit: suit}
			buf := EncodeCard(in)
			out, ok := DecodeCard(buf[:])
			if !ok {
				t.Fatalf("DecodeCard(%v) not ok for rank=%d suit=%d", buf, rank, suit)
			}
			if out != in {
				t.Errorf("round trip mismatch: encoded %v, decoded %v", in, out)
			}
		}
	}
}

func TestCardEncoding(t *testing.T) {
	buf := EncodeCard(game.Card{Rank: 7, Suit: 2})
	if got, want := string(buf[:2]), "07"; got != want {
		t.Errorf("rank digits = %q, want %q", got, want)
	}
	if buf[2] != 2 {
		t.Errorf("suit byte = %d, want 2", buf[2])
	}

	buf = EncodeCard(game.Card{Rank: 13, Suit: 0})
	if got, want := string(buf[:2]), "13"; got != want {
		t.Errorf("rank digits = %q, want %q", got, want)
	}
}

func TestDecodeCardInvalid(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "short", buf: []byte{'0', '1'}},
		{name: "empty", buf: nil},
		{name: "rank_zero", buf: []byte{'0', '0', 1}},
		{name: "rank_too_high", buf: []byte{'1', '4', 0}},
		{name: "non_digit_hi", buf: []byte{'x', '1', 0}},
		{name: "non_digit_lo", buf: []byte{'0', 'x', 0}},
		{name: "suit_out_of_range", buf: []byte{'0', '5', 4}},
		{name: "placeholder", buf: []byte{'0', '0', '0'}},
		{name: "raw_bytes", buf: []byte{0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c, ok := DecodeCard(tt.buf); ok {
				t.Errorf("DecodeCard(%v) = %v, want not ok", tt.buf, c)
			}
		})
	}
}
