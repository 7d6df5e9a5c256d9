package protocol

import (
	"encoding/binary"

	"github.com/t-rays/Blackijecky/pkg/game"
)

// Payload is the server→client per-step frame: a result code plus an
// optional card. HasCard is false when the 3-byte card field holds the
// no-card placeholder (or any other invalid encoding).
type Payload struct {
	Result  game.Result
	Card    game.Card
	HasCard bool
}

// EncodePayload encodes a result with a card.
func EncodePayload(result game.Result, card game.Card) []byte {
	return encodePayload(result, EncodeCard(card))
}

// EncodeResult encodes a result with the no-card placeholder. Used for
// the final frame of a round after the dealer has played.
func EncodeResult(result game.Result) []byte {
	return encodePayload(result, noCardToken)
}

func encodePayload(result game.Result, card [CardSize]byte) []byte {
	buf := make([]byte, PayloadSize)
	binary.BigEndian.PutUint32(buf[0:4], MagicCookie)
	buf[4] = byte(TypePayload)
	buf[5] = byte(result)
	copy(buf[6:], card[:])
	return buf
}

// DecodePayload decodes a server→client payload frame. An undecodable
// card field yields HasCard=false rather than an error; only the frame
// envelope itself can fail.
func DecodePayload(buf []byte) (Payload, error) {
	if len(buf) < PayloadSize {
		return Payload{}, ErrShortBuffer
	}
	if binary.BigEndian.Uint32(buf[0:4]) != MagicCookie {
		return Payload{}, ErrBadCookie
	}
	if MessageType(buf[4]) != TypePayload {
		return Payload{}, ErrBadType
	}
	p := Payload{Result: game.Result(buf[5])}
	p.Card, p.HasCard = DecodeCard(buf[6:PayloadSize])
	return p, nil
}
