package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnexpectedShape is returned when a record path walks through a value
// that is not a JSON object.
var ErrUnexpectedShape = errors.New("unexpected record shape")

// Placeholder is rendered in place of missing record fields.
const Placeholder = "N/A"

// Record is one decoded JSON object returned by an API.
//
// Values follow encoding/json decoding with UseNumber enabled: string,
// json.Number, bool, nil, map[string]any and []any. No key is guaranteed to
// be present.
type Record map[string]any

// Lookup walks path through nested objects.
//
// A missing key at any level yields found == false and a nil error. Walking
// through a value that is not an object yields [ErrUnexpectedShape]. A key
// whose value is JSON null is reported as found with a nil value.
func (r Record) Lookup(path ...string) (any, bool, error) {
	if len(path) == 0 {
		return nil, false, nil
	}

	var current any = map[string]any(r)
	for i, key := range path {
		obj, ok := asObject(current)
		if !ok {
			return nil, false, fmt.Errorf("%w: %q is %s, not an object",
				ErrUnexpectedShape, strings.Join(path[:i], "."), kindOf(current))
		}
		current, ok = obj[key]
		if !ok {
			return nil, false, nil
		}
	}

	return current, true, nil
}

// Text returns the value at path as display text.
// Missing and null values resolve to def.
func (r Record) Text(def string, path ...string) (string, error) {
	v, found, err := r.Lookup(path...)
	if err != nil {
		return "", err
	}
	if !found || v == nil {
		return def, nil
	}

	return FormatValue(v), nil
}

// FormatValue renders a decoded JSON value verbatim.
// Numbers keep their original JSON text, nested values render as compact JSON.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return Placeholder
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(raw)
	}
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case Record:
		return obj, true
	default:
		return nil, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case json.Number, float64:
		return "a number"
	case bool:
		return "a boolean"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
