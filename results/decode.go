// Package results re-expresses protocol-decoded columns as Go values and
// maps whole rows onto host objects. Decoding is driven by the declared
// column type; the value tree must match the descriptor tree, and any
// disagreement is reported, never papered over with a nil.
package results

import (
	"fmt"
	"reflect"
	"time"

	"github.com/ripkitten-co/purr"
	"github.com/ripkitten-co/purr/cql"
)

// Decoder reconstructs Go values from decoded protocol columns. It is
// stateless and safe for concurrent use.
type Decoder struct {
	uuids UUIDFactory
	dates DateFactory
}

// NewDecoder returns a Decoder. By default UUID columns decode through
// github.com/google/uuid and date columns into time.Time.
func NewDecoder(opts ...Option) *Decoder {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &Decoder{uuids: cfg.uuids, dates: cfg.dates}
}

// DecodeColumn converts one column value against its declared type. A nil
// value is protocol NULL and decodes to nil regardless of the declared
// type. Composite types recurse with no depth limit; pathological nesting
// is a schema concern, not guarded here.
func (d *Decoder) DecodeColumn(t cql.Type, v *cql.Value) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t.ID {
	case cql.TypeAscii:
		s, ok := v.AsAscii()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return s, nil
	case cql.TypeText:
		s, ok := v.AsText()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return s, nil
	case cql.TypeBoolean:
		b, ok := v.AsBoolean()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return b, nil
	case cql.TypeBlob:
		b, ok := v.AsBlob()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return b, nil
	case cql.TypeTinyInt:
		n, ok := v.AsTinyInt()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return n, nil
	case cql.TypeSmallInt:
		n, ok := v.AsSmallInt()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return n, nil
	case cql.TypeInt:
		n, ok := v.AsInt()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return n, nil
	case cql.TypeBigInt:
		n, ok := v.AsBigInt()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return n, nil
	case cql.TypeFloat:
		f, ok := v.AsFloat()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return f, nil
	case cql.TypeDouble:
		f, ok := v.AsDouble()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return f, nil
	case cql.TypeUUID:
		u, ok := v.AsUUID()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return d.uuids(u.String())
	case cql.TypeTimeUUID:
		u, ok := v.AsTimeUUID()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return d.uuids(u.String())
	case cql.TypeInet:
		a, ok := v.AsInet()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return a, nil
	case cql.TypeDate:
		day, ok := v.AsDate()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return d.dates(day.Format("2006-01-02"))
	case cql.TypeTimestamp:
		ms, ok := v.AsTimestampMillis()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return ms, nil
	case cql.TypeDuration:
		// The wire carries nanoseconds; the host duration is microsecond
		// granular, so sub-microsecond precision truncates toward zero.
		ns, ok := v.AsDurationNanos()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return time.Duration(ns/1000) * time.Microsecond, nil
	case cql.TypeList:
		elems, ok := v.AsList()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return d.decodeSequence(*t.Elem, elems)
	case cql.TypeSet:
		elems, ok := v.AsSet()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return d.decodeSet(*t.Elem, elems)
	case cql.TypeMap:
		entries, ok := v.AsMap()
		if !ok {
			return nil, mismatch(t.ID)
		}
		return d.decodeMap(t, entries)
	case cql.TypeTuple:
		elems, ok := v.AsTuple()
		if !ok {
			return nil, fmt.Errorf("results: value is not tuple-shaped: %w", purr.ErrMalformedValue)
		}
		return d.decodeTuple(t, elems)
	case cql.TypeTime, cql.TypeCounter, cql.TypeVarint, cql.TypeDecimal:
		return nil, fmt.Errorf("results: %s is not yet supported: %w", t.ID, purr.ErrUnsupportedType)
	case cql.TypeCustom:
		return nil, fmt.Errorf("results: custom type %q is not yet supported: %w", t.Name, purr.ErrUnsupportedType)
	case cql.TypeUDT:
		return nil, fmt.Errorf("results: udt %s.%s is not yet supported: %w", t.Keyspace, t.Name, purr.ErrUnsupportedType)
	default:
		return nil, fmt.Errorf("results: unknown column type %s: %w", t.ID, purr.ErrUnsupportedType)
	}
}

func (d *Decoder) decodeSequence(elem cql.Type, values []cql.Value) ([]any, error) {
	out := make([]any, 0, len(values))
	for i := range values {
		hv, err := d.DecodeColumn(elem, &values[i])
		if err != nil {
			return nil, err
		}
		out = append(out, hv)
	}
	return out, nil
}

func (d *Decoder) decodeSet(elem cql.Type, values []cql.Value) (map[any]struct{}, error) {
	out := make(map[any]struct{}, len(values))
	for i := range values {
		hv, err := d.DecodeColumn(elem, &values[i])
		if err != nil {
			return nil, err
		}
		key, ok := mapKey(hv)
		if !ok {
			return nil, fmt.Errorf("results: set element of type %T is not hashable: %w", hv, purr.ErrMalformedValue)
		}
		out[key] = struct{}{}
	}
	return out, nil
}

func (d *Decoder) decodeMap(t cql.Type, entries []cql.MapEntry) (map[any]any, error) {
	out := make(map[any]any, len(entries))
	for i := range entries {
		hv, err := d.DecodeColumn(*t.Key, &entries[i].Key)
		if err != nil {
			return nil, err
		}
		key, ok := mapKey(hv)
		if !ok {
			return nil, fmt.Errorf("results: map key of type %T is not hashable: %w", hv, purr.ErrMalformedValue)
		}
		val, err := d.DecodeColumn(*t.Value, &entries[i].Value)
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite; the protocol layer deduplicates upstream.
		out[key] = val
	}
	return out, nil
}

func (d *Decoder) decodeTuple(t cql.Type, values []*cql.Value) ([]any, error) {
	if len(values) != len(t.Elems) {
		return nil, fmt.Errorf("results: tuple has %d values for %d declared fields: %w",
			len(values), len(t.Elems), purr.ErrMalformedValue)
	}
	out := make([]any, len(values))
	for i, elemType := range t.Elems {
		hv, err := d.DecodeColumn(elemType, values[i])
		if err != nil {
			return nil, err
		}
		out[i] = hv
	}
	return out, nil
}

func mismatch(id cql.TypeID) error {
	return fmt.Errorf("results: cannot parse value as %s: %w", id, purr.ErrTypeMismatch)
}

// mapKey returns a comparable rendering of hv for use as a Go map key.
// Blobs key by their string form, since byte sequences are valid set
// members and map keys on the wire; nil is a valid key. Collection-typed
// values have no comparable rendering.
func mapKey(hv any) (any, bool) {
	if b, ok := hv.([]byte); ok {
		return string(b), true
	}
	if hv == nil || reflect.TypeOf(hv).Comparable() {
		return hv, true
	}
	return nil, false
}
