package game

// Result is a round outcome as carried on the wire, always from the
// perspective of the receiving client.
type Result uint8

const (
	NotOver Result = 0x0
	Tie     Result = 0x1
	Loss    Result = 0x2
	Win     Result = 0x3
)

// Terminal reports whether the result ends a round.
func (r Result) Terminal() bool {
	return r == Tie || r == Loss || r == Win
}

// Valid reports whether r is one of the four wire result codes.
func (r Result) Valid() bool {
	return r <= Win
}

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case NotOver:
		return "NotOver"
	case Tie:
		return "Tie"
	case Loss:
		return "Loss"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}
