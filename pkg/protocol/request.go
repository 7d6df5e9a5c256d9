package protocol

import "encoding/binary"

// Request is the client's opening TCP frame declaring how many rounds it
// wants to play.
type Request struct {
	NumRounds uint8
	Name      string // client display name, at most NameSize bytes on the wire
}

// EncodeRequest encodes a request to its 38-byte wire form.
func EncodeRequest(r Request) []byte {
	buf := make([]byte, RequestSize)
	binary.BigEndian.PutUint32(buf[0:4], MagicCookie)
	buf[4] = byte(TypeRequest)
	buf[5] = r.NumRounds
	packName(buf[6:], r.Name)
	return buf
}

// DecodeRequest decodes a request frame, validating length, cookie, and
// type tag.
func DecodeRequest(buf []byte) (Request, error) {
	if len(buf) < RequestSize {
		return Request{}, ErrShortBuffer
	}
	if binary.BigEndian.Uint32(buf[0:4]) != MagicCookie {
		return Request{}, ErrBadCookie
	}
	if MessageType(buf[4]) != TypeRequest {
		return Request{}, ErrBadType
	}
	return Request{
		NumRounds: buf[5],
		Name:      unpackName(buf[6:]),
	}, nil
}
