package engine

import "bytes"

// splice replaces b[start:end) with replacement, returning a new buffer.
// Grounded on the teacher's internal/util.Splice.
func splice(b []byte, start, end int, replacement []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(b) - (end - start) + len(replacement))
	buf.Write(b[:start])
	buf.Write(replacement)
	buf.Write(b[end:])
	return buf.Bytes()
}
