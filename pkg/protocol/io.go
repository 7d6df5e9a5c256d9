package protocol

import (
	"io"
)

// ReadExact reads exactly n bytes from r. It returns io.EOF when the
// peer closed before sending anything (a clean close between frames) and
// io.ErrUnexpectedEOF when the stream ended mid-frame. Callers on a
// net.Conn control blocking behavior with deadlines.
func ReadExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
