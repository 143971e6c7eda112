package results

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Row is one decoded result record, keyed by column name. A column that is
// present but NULL holds nil.
type Row map[string]any

// Rows is an ordered sequence of decoded records.
type Rows []Row

// Constructor builds one host object from a row's named fields.
type Constructor func(Row) (any, error)

// MapRows invokes ctor once per row, in input order. Any single failure
// aborts the whole batch; no partial results are returned.
func MapRows(rows []Row, ctor Constructor) ([]any, error) {
	out := make([]any, 0, len(rows))
	for i, row := range rows {
		obj, err := ctor(row)
		if err != nil {
			return nil, fmt.Errorf("results: map row %d: %w", i, err)
		}
		out = append(out, obj)
	}
	return out, nil
}

// StructOf returns a Constructor that binds a row onto a new *T by field
// name. Every field of T must be present in the row; a missing field fails
// the construction, and with it the whole batch.
func StructOf[T any]() Constructor {
	return func(row Row) (any, error) {
		var obj T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:     &obj,
			ErrorUnset: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(map[string]any(row)); err != nil {
			return nil, err
		}
		return &obj, nil
	}
}
