package resolve

import "encoding/json"

// coalesce substitutes def when v is T's zero value.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// defaultParseJSON is the ParseJSON used when Options leaves it nil.
func defaultParseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
