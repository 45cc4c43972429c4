package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Input is the bag of values under validation, keyed by field name.
// A key mapped to nil is present; only a missing key is absent.
type Input map[string]any

// Has reports whether field is a key of the bag.
func (in Input) Has(field string) bool {
	_, ok := in[field]
	return ok
}

// String returns the value of field as rules see it and whether the field
// is present.
func (in Input) String(field string) (string, bool) {
	v, ok := in[field]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	case bool:
		if t {
			return "1"
		}
		return ""
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
