package protocol

import "bytes"

// packName truncates a UTF-8 name to NameSize bytes and NUL-pads it into
// dst. Truncation is byte-wise; a multi-byte rune split at the boundary
// is tolerated by the best-effort decode on the other side.
func packName(dst []byte, name string) {
	n := copy(dst[:NameSize], name)
	for i := n; i < NameSize; i++ {
		dst[i] = 0
	}
}

// unpackName trims trailing NUL bytes and returns the name. Invalid
// UTF-8 in the remaining bytes is passed through untouched; name fields
// are display strings, not identifiers worth failing a frame over.
func unpackName(buf []byte) string {
	return string(bytes.TrimRight(buf[:NameSize], "\x00"))
}
