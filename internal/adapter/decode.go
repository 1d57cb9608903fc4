package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/public-api-fetcher/models"
)

// decodeRecords parses body into a record list.
//
// With an empty resultsKey the body must be a JSON array of objects. With a
// resultsKey the body must be a JSON object; its resultsKey member holds the
// array, and a missing member yields an empty list. Any other shape is an
// [ErrDecode].
func decodeRecords(body []byte, resultsKey string) ([]models.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty response body", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrDecode)
	}

	list := payload
	if resultsKey != "" {
		envelope, ok := payload.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrDecode, jsonKind(payload))
		}
		list, ok = envelope[resultsKey]
		if !ok {
			return []models.Record{}, nil
		}
	}

	items, ok := list.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array of records, got %s", ErrDecode, jsonKind(list))
	}

	records := make([]models.Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is %s, not an object", ErrDecode, i+1, jsonKind(item))
		}
		records = append(records, models.Record(obj))
	}

	return records, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
