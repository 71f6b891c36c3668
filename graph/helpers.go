package graph

import (
	"encoding/json"
	"strconv"

	"github.com/camilacod/DataVizVastProject/errors"
)

// normalizeNodeID turns a JSON node identifier into its string form.
// Integral numbers render without exponent or fraction (7, not 7.0), so
// numeric and string references to the same node agree.
func normalizeNodeID(v interface{}) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		return FormatNumber(id), nil
	case float64:
		return FormatNumber(json.Number(strconv.FormatFloat(id, 'f', -1, 64))), nil
	case nil:
		return "", errors.New("node identifier is null")
	default:
		return "", errors.Newf("node identifier must be a string or number, got %T", v)
	}
}

// FormatNumber renders a JSON number the way the dataset uses it: integral
// values without a fractional part, everything else in shortest form.
func FormatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// typeAttr reads a type tag attribute, defaulting to Unknown
func typeAttr(attrs map[string]interface{}, key string) string {
	if s, ok := attrs[key].(string); ok && s != "" {
		return s
	}
	return unknownType
}
