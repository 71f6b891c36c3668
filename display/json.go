package display

import (
	"encoding/json"
)

// MarshalJSON marshals v with two-space indentation, the layout used by
// every JSON artifact the tool writes
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
