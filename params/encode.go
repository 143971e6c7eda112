// Package params turns Go query parameters into their CQL binary form. A
// value is first classified into a wire kind by inspecting its runtime
// type, then serialized; classification failures name the offending type
// and are never silently coerced.
package params

import (
	"fmt"
	"math"
	"net"
	"net/netip"
	"reflect"

	"github.com/google/uuid"
	"github.com/ripkitten-co/purr"
	"github.com/ripkitten-co/purr/internal/wire"
)

// EncodeParameter classifies v and returns its length-prefixed CQL binary
// encoding. A nil v encodes as protocol NULL.
func EncodeParameter(v any) ([]byte, error) {
	wv, err := encode(v)
	if err != nil {
		return nil, err
	}
	return wv.AppendTo(nil), nil
}

// encode classifies a host value into a wire kind. Case order follows the
// classification precedence the host contract documents: strings, then
// booleans ahead of the integer family (hosts that treat booleans as
// integer-compatible must never see true encoded as bigint 1), then
// integers widened to the 64-bit kind, floats widened to the 64-bit kind,
// raw bytes, UUIDs, addresses, and finally collections.
func encode(v any) (wire.Value, error) {
	switch x := v.(type) {
	case nil:
		return wire.Null{}, nil
	case string:
		return wire.Text(x), nil
	case bool:
		return wire.Boolean(x), nil
	case int:
		return wire.BigInt(x), nil
	case int8:
		return wire.BigInt(x), nil
	case int16:
		return wire.BigInt(x), nil
	case int32:
		return wire.BigInt(x), nil
	case int64:
		return wire.BigInt(x), nil
	case uint8:
		return wire.BigInt(x), nil
	case uint16:
		return wire.BigInt(x), nil
	case uint32:
		return wire.BigInt(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("params: %d overflows the integer wire kind: %w", x, purr.ErrMalformedValue)
		}
		return wire.BigInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("params: %d overflows the integer wire kind: %w", x, purr.ErrMalformedValue)
		}
		return wire.BigInt(x), nil
	case float32:
		return wire.Double(x), nil
	case float64:
		return wire.Double(x), nil
	case []byte:
		return wire.Blob(x), nil
	case uuid.UUID:
		return wire.UUID(x), nil
	case netip.Addr:
		if !x.IsValid() {
			return nil, fmt.Errorf("params: zero netip.Addr: %w", purr.ErrMalformedValue)
		}
		return wire.Inet(x), nil
	case net.IP:
		addr, ok := netip.AddrFromSlice(x)
		if !ok {
			return nil, fmt.Errorf("params: invalid IP address %v: %w", x, purr.ErrMalformedValue)
		}
		return wire.Inet(addr.Unmap()), nil
	}
	return encodeCollection(v)
}

// encodeCollection handles slices, arrays, and struct{}-valued maps (the
// Go rendering of a set). Everything else is an unsupported parameter.
func encodeCollection(v any) (wire.Value, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make(wire.List, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := encode(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			seq = append(seq, elem)
		}
		return seq, nil
	case reflect.Map:
		if rv.Type().Elem() == emptyStruct {
			seq := make(wire.List, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				elem, err := encode(iter.Key().Interface())
				if err != nil {
					return nil, err
				}
				seq = append(seq, elem)
			}
			return seq, nil
		}
	}
	return nil, fmt.Errorf("params: cannot bind %T: %w", v, purr.ErrUnsupportedType)
}

var emptyStruct = reflect.TypeOf(struct{}{})
