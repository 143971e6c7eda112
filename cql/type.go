// Package cql models the protocol-facing side of result decoding: column
// type descriptors as declared in query metadata, and the already
// wire-decoded values the protocol layer hands over. Nothing here touches
// raw frame bytes; that is the driver's job.
package cql

// TypeID identifies a CQL column type.
type TypeID int

const (
	TypeAscii TypeID = iota
	TypeText
	TypeBoolean
	TypeBlob
	TypeTinyInt
	TypeSmallInt
	TypeInt
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeUUID
	TypeTimeUUID
	TypeInet
	TypeDate
	TypeTimestamp
	TypeDuration
	TypeList
	TypeSet
	TypeMap
	TypeTuple

	// Declared by the protocol but not convertible by this library.
	TypeTime
	TypeCounter
	TypeVarint
	TypeDecimal
	TypeCustom
	TypeUDT
)

func (id TypeID) String() string {
	switch id {
	case TypeAscii:
		return "ascii"
	case TypeText:
		return "text"
	case TypeBoolean:
		return "boolean"
	case TypeBlob:
		return "blob"
	case TypeTinyInt:
		return "tinyint"
	case TypeSmallInt:
		return "smallint"
	case TypeInt:
		return "int"
	case TypeBigInt:
		return "bigint"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeUUID:
		return "uuid"
	case TypeTimeUUID:
		return "timeuuid"
	case TypeInet:
		return "inet"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	case TypeDuration:
		return "duration"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeMap:
		return "map"
	case TypeTuple:
		return "tuple"
	case TypeTime:
		return "time"
	case TypeCounter:
		return "counter"
	case TypeVarint:
		return "varint"
	case TypeDecimal:
		return "decimal"
	case TypeCustom:
		return "custom"
	case TypeUDT:
		return "udt"
	default:
		return "unknown"
	}
}

// Type is an immutable descriptor of a protocol-declared column type.
// Composite types embed child descriptors; the tree's shape must match the
// shape of the decoded value it is paired with.
type Type struct {
	ID TypeID

	// Elem is the element type of a list or set.
	Elem *Type

	// Key and Value are the entry types of a map.
	Key   *Type
	Value *Type

	// Elems are the positional types of a tuple.
	Elems []Type

	// Name is the class name of a custom type, or the type name of a UDT.
	Name     string
	Keyspace string
}

// Scalar returns a descriptor with no children.
func Scalar(id TypeID) Type { return Type{ID: id} }

func ListOf(elem Type) Type { return Type{ID: TypeList, Elem: &elem} }

func SetOf(elem Type) Type { return Type{ID: TypeSet, Elem: &elem} }

func MapOf(key, value Type) Type {
	return Type{ID: TypeMap, Key: &key, Value: &value}
}

func TupleOf(elems ...Type) Type { return Type{ID: TypeTuple, Elems: elems} }

func CustomOf(name string) Type { return Type{ID: TypeCustom, Name: name} }

func UDTOf(keyspace, name string) Type {
	return Type{ID: TypeUDT, Keyspace: keyspace, Name: name}
}
