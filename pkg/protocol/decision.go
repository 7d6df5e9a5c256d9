package protocol

import (
	"bytes"
	"encoding/binary"
)

// EncodeDecision encodes a client→server decision frame. Only
// DecisionHit and DecisionStand are encodable; anything else is rejected
// before it reaches the wire.
func EncodeDecision(decision string) ([]byte, error) {
	if decision != DecisionHit && decision != DecisionStand {
		return nil, ErrBadDecision
	}
	buf := make([]byte, DecisionSize)
	binary.BigEndian.PutUint32(buf[0:4], MagicCookie)
	buf[4] = byte(TypePayload)
	copy(buf[5:], decision)
	return buf, nil
}

// DecodeDecision decodes a client→server decision frame. The decision
// field is NUL-trimmed and must be exactly "Hitt" or "Stand".
func DecodeDecision(buf []byte) (string, error) {
	if len(buf) < DecisionSize {
		return "", ErrShortBuffer
	}
	if binary.BigEndian.Uint32(buf[0:4]) != MagicCookie {
		return "", ErrBadCookie
	}
	if MessageType(buf[4]) != TypePayload {
		return "", ErrBadType
	}
	decision := string(bytes.TrimRight(buf[5:DecisionSize], "\x00"))
	if decision != DecisionHit && decision != DecisionStand {
		return "", ErrBadDecision
	}
	return decision, nil
}
