package cql

import (
	"net/netip"
	"time"

	"github.com/google/uuid"
)

// Value is a protocol-decoded CQL value. Exactly one payload is set,
// matching the kind; the typed accessors return ok=false when asked for a
// payload the value does not hold. Build values with the constructors
// below, never as struct literals.
type Value struct {
	kind TypeID

	str   string
	bv    bool
	blob  []byte
	i64   int64
	f64   float64
	id    uuid.UUID
	addr  netip.Addr
	day   time.Time
	seq   []Value
	pairs []MapEntry
	tup   []*Value
}

// MapEntry is one decoded key/value pair of a map column, in protocol
// order.
type MapEntry struct {
	Key   Value
	Value Value
}

func (v Value) Kind() TypeID { return v.kind }

func Ascii(s string) Value { return Value{kind: TypeAscii, str: s} }

func Text(s string) Value { return Value{kind: TypeText, str: s} }

func Boolean(b bool) Value { return Value{kind: TypeBoolean, bv: b} }

func Blob(b []byte) Value { return Value{kind: TypeBlob, blob: b} }

func TinyInt(n int8) Value { return Value{kind: TypeTinyInt, i64: int64(n)} }

func SmallInt(n int16) Value { return Value{kind: TypeSmallInt, i64: int64(n)} }

func Int(n int32) Value { return Value{kind: TypeInt, i64: int64(n)} }

func BigInt(n int64) Value { return Value{kind: TypeBigInt, i64: n} }

func Float(f float32) Value { return Value{kind: TypeFloat, f64: float64(f)} }

func Double(f float64) Value { return Value{kind: TypeDouble, f64: f} }

func UUID(u uuid.UUID) Value { return Value{kind: TypeUUID, id: u} }

func TimeUUID(u uuid.UUID) Value { return Value{kind: TypeTimeUUID, id: u} }

func Inet(a netip.Addr) Value { return Value{kind: TypeInet, addr: a} }

// Date holds a calendar date; the time-of-day part of t is ignored.
func Date(t time.Time) Value { return Value{kind: TypeDate, day: t} }

// TimestampMillis holds milliseconds since the Unix epoch.
func TimestampMillis(ms int64) Value { return Value{kind: TypeTimestamp, i64: ms} }

// DurationNanos holds a time span in nanoseconds.
func DurationNanos(ns int64) Value { return Value{kind: TypeDuration, i64: ns} }

func List(elems ...Value) Value { return Value{kind: TypeList, seq: elems} }

func Set(elems ...Value) Value { return Value{kind: TypeSet, seq: elems} }

func Map(entries ...MapEntry) Value { return Value{kind: TypeMap, pairs: entries} }

func Entry(key, value Value) MapEntry { return MapEntry{Key: key, Value: value} }

// Tuple holds positional values; a nil position is an absent (NULL) field.
func Tuple(elems ...*Value) Value { return Value{kind: TypeTuple, tup: elems} }

func (v Value) AsAscii() (string, bool) { return v.str, v.kind == TypeAscii }

func (v Value) AsText() (string, bool) { return v.str, v.kind == TypeText }

func (v Value) AsBoolean() (bool, bool) { return v.bv, v.kind == TypeBoolean }

func (v Value) AsBlob() ([]byte, bool) { return v.blob, v.kind == TypeBlob }

func (v Value) AsTinyInt() (int8, bool) { return int8(v.i64), v.kind == TypeTinyInt }

func (v Value) AsSmallInt() (int16, bool) { return int16(v.i64), v.kind == TypeSmallInt }

func (v Value) AsInt() (int32, bool) { return int32(v.i64), v.kind == TypeInt }

func (v Value) AsBigInt() (int64, bool) { return v.i64, v.kind == TypeBigInt }

func (v Value) AsFloat() (float32, bool) { return float32(v.f64), v.kind == TypeFloat }

func (v Value) AsDouble() (float64, bool) { return v.f64, v.kind == TypeDouble }

func (v Value) AsUUID() (uuid.UUID, bool) { return v.id, v.kind == TypeUUID }

func (v Value) AsTimeUUID() (uuid.UUID, bool) { return v.id, v.kind == TypeTimeUUID }

func (v Value) AsInet() (netip.Addr, bool) { return v.addr, v.kind == TypeInet }

func (v Value) AsDate() (time.Time, bool) { return v.day, v.kind == TypeDate }

func (v Value) AsTimestampMillis() (int64, bool) { return v.i64, v.kind == TypeTimestamp }

func (v Value) AsDurationNanos() (int64, bool) { return v.i64, v.kind == TypeDuration }

func (v Value) AsList() ([]Value, bool) { return v.seq, v.kind == TypeList }

func (v Value) AsSet() ([]Value, bool) { return v.seq, v.kind == TypeSet }

func (v Value) AsMap() ([]MapEntry, bool) { return v.pairs, v.kind == TypeMap }

func (v Value) AsTuple() ([]*Value, bool) { return v.tup, v.kind == TypeTuple }
