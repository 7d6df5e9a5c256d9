package protocol

import "errors"

// MagicCookie identifies a frame as belonging to this protocol.
const MagicCookie uint32 = 0xabcddcba

// MessageType is the 1-byte type tag following the magic cookie.
type MessageType uint8

const (
	TypeOffer   MessageType = 0x02 // Server → broadcast
	TypeRequest MessageType = 0x03 // Client → server, once per session
	TypePayload MessageType = 0x04 // Both directions during a round
)

// String returns the string representation of the message type.
func (mt MessageType) String() string {
	switch mt {
	case TypeOffer:
		return "Offer"
	case TypeRequest:
		return "Request"
	case TypePayload:
		return "Payload"
	default:
		return "Unknown"
	}
}

// Fixed frame and field sizes in bytes.
const (
	headerSize = 5 // cookie + type tag

	OfferSize    = headerSize + 2 + NameSize // 39
	RequestSize  = headerSize + 1 + NameSize // 38
	PayloadSize  = headerSize + 1 + CardSize // 9, server → client
	DecisionSize = headerSize + decisionLen  // 10, client → server

	NameSize    = 32
	CardSize    = 3
	decisionLen = 5
)

// Decisions a client may send. Anything else is invalid on the wire.
// "Hitt" is four characters by protocol definition; it is NUL-padded to
// the 5-byte decision field.
const (
	DecisionHit   = "Hitt"
	DecisionStand = "Stand"
)

// MaxRounds is the largest round count a Request can carry. The limit
// is structural: NumRounds is a single byte on the wire.
const MaxRounds = 255

// Decoding errors. All of them are soft: a failed decode never closes a
// connection by itself.
var (
	ErrShortBuffer = errors.New("protocol: buffer too short")
	ErrBadCookie   = errors.New("protocol: bad magic cookie")
	ErrBadType     = errors.New("protocol: unexpected message type")
	ErrBadDecision = errors.New("protocol: invalid decision string")
)
