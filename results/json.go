package results

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders the decoded rows as a JSON array, for export and debugging.
// Host values serialize in their natural JSON forms; this is not a wire
// format.
func (rs Rows) JSON() ([]byte, error) {
	return json.Marshal([]Row(rs))
}
