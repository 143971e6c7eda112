// Package wire holds the classified form of outbound query parameters and
// serializes it to the CQL native protocol [bytes] notation: a signed
// 32-bit big-endian length followed by the payload, with -1 meaning NULL.
package wire

// appendInt appends a signed 32-bit big-endian integer.
func appendInt(dst []byte, n int32) []byte {
	return append(dst, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}

// appendLong appends a signed 64-bit big-endian integer.
func appendLong(dst []byte, n int64) []byte {
	return append(dst,
		byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
		byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}

// appendShort appends a signed 16-bit big-endian integer.
func appendShort(dst []byte, n int16) []byte {
	return append(dst, byte(n>>8), byte(n))
}

// appendBytes appends a length-prefixed byte sequence.
func appendBytes(dst, payload []byte) []byte {
	dst = appendInt(dst, int32(len(payload)))
	return append(dst, payload...)
}
