package wire

import (
	"math"
	"net/netip"

	"github.com/google/uuid"
)

// Value is one classified query parameter. Every variant serializes itself
// independently; none reads sibling state. Values live for a single encode
// call and are discarded after serialization.
type Value interface {
	// AppendTo appends the length-prefixed binary form of the value to dst.
	AppendTo(dst []byte) []byte
}

type Text string

func (v Text) AppendTo(dst []byte) []byte { return appendBytes(dst, []byte(v)) }

type BigInt int64

func (v BigInt) AppendTo(dst []byte) []byte {
	dst = appendInt(dst, 8)
	return appendLong(dst, int64(v))
}

type Int int32

func (v Int) AppendTo(dst []byte) []byte {
	dst = appendInt(dst, 4)
	return appendInt(dst, int32(v))
}

type SmallInt int16

func (v SmallInt) AppendTo(dst []byte) []byte {
	dst = appendInt(dst, 2)
	return appendShort(dst, int16(v))
}

type Boolean bool

func (v Boolean) AppendTo(dst []byte) []byte {
	dst = appendInt(dst, 1)
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

type Double float64

func (v Double) AppendTo(dst []byte) []byte {
	dst = appendInt(dst, 8)
	return appendLong(dst, int64(math.Float64bits(float64(v))))
}

type Float float32

func (v Float) AppendTo(dst []byte) []byte {
	dst = appendInt(dst, 4)
	return appendInt(dst, int32(math.Float32bits(float32(v))))
}

type Blob []byte

func (v Blob) AppendTo(dst []byte) []byte { return appendBytes(dst, v) }

type UUID uuid.UUID

func (v UUID) AppendTo(dst []byte) []byte { return appendBytes(dst, v[:]) }

type Inet netip.Addr

func (v Inet) AppendTo(dst []byte) []byte {
	return appendBytes(dst, netip.Addr(v).AsSlice())
}

// List is an ordered sequence of nested values; it also carries tuple and
// set parameters, which share the sequence wire shape.
type List []Value

func (v List) AppendTo(dst []byte) []byte {
	payload := appendInt(nil, int32(len(v)))
	for _, elem := range v {
		payload = elem.AppendTo(payload)
	}
	return appendBytes(dst, payload)
}

// Null is a protocol NULL parameter.
type Null struct{}

func (Null) AppendTo(dst []byte) []byte { return appendInt(dst, -1) }
