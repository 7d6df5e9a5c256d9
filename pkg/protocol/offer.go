package protocol

import "encoding/binary"

// Offer is the UDP broadcast frame advertising a server's TCP endpoint.
type Offer struct {
	TCPPort uint16
	Name    string // server display name, at most NameSize bytes on the wire
}

// EncodeOffer encodes an offer to its 39-byte wire form.
func EncodeOffer(o Offer) []byte {
	buf := make([]byte, OfferSize)
	binary.BigEndian.PutUint32(buf[0:4], MagicCookie)
	buf[4] = byte(TypeOffer)
	binary.BigEndian.PutUint16(buf[5:7], o.TCPPort)
	packName(buf[7:], o.Name)
	return buf
}

// DecodeOffer decodes an offer frame, validating length, cookie, and
// type tag.
func DecodeOffer(buf []byte) (Offer, error) {
	if len(buf) < OfferSize {
		return Offer{}, ErrShortBuffer
	}
	if binary.BigEndian.Uint32(buf[0:4]) != MagicCookie {
		return Offer{}, ErrBadCookie
	}
	if MessageType(buf[4]) != TypeOffer {
		return Offer{}, ErrBadType
	}
	return Offer{
		TCPPort: binary.BigEndian.Uint16(buf[5:7]),
		Name:    unpackName(buf[7:]),
	}, nil
}
