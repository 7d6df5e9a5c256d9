package protocol

import (
	"github.com/t-rays/Blackijecky/pkg/game"
)

// noCardToken is the "000" placeholder sent when a payload frame
// carries a result but no card. It intentionally fails DecodeCard.
var noCardToken = [CardSize]byte{'0', '0', '0'}

// EncodeCard encodes a card as 3 bytes: the rank as two zero-padded
// ASCII digits followed by the raw suit byte.
func EncodeCard(c game.Card) [CardSize]byte {
	var buf [CardSize]byte
	buf[0] = '0' + c.Rank/10
	buf[1] = '0' + c.Rank%10
	buf[2] = c.Suit
	return buf
}

// DecodeCard decodes a 3-byte card token. It returns ok=false for short
// input, non-digit rank bytes, out-of-range ranks or suits, and the
// no-card placeholder. An invalid encoding never decodes to a default
// card.
func DecodeCard(buf []byte) (game.Card, bool) {
	if len(buf) < CardSize {
		return game.Card{}, false
	}
	hi, lo := buf[0], buf[1]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return game.Card{}, false
	}
	c := game.Card{
		Rank: (hi-'0')*10 + (lo - '0'),
		Suit: buf[2],
	}
	if !c.Valid() {
		return game.Card{}, false
	}
	return c, true
}
