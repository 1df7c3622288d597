package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PathSeparator separates the paths of a filter expression and the values it yields.
const PathSeparator = ";"

// Filter resolves every dotted path of expr against raw and returns the
// values joined by PathSeparator.
//
// Path segments select object keys or, on arrays, zero based indexes.
// Strings are printed unquoted, other values as compact JSON. A path that
// does not resolve yields "null".
func Filter(raw json.RawMessage, expr string) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return "", fmt.Errorf("decode filter input: %w", err)
	}

	paths := strings.Split(expr, PathSeparator)
	values := make([]string, 0, len(paths))
	for _, path := range paths {
		v, ok := lookup(doc, strings.TrimSpace(path))
		if !ok {
			values = append(values, "null")
			continue
		}

		s, err := render(v)
		if err != nil {
			return "", err
		}
		values = append(values, s)
	}

	return strings.Join(values, PathSeparator), nil
}

func lookup(doc any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	cur := doc
	for _, key := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}

	return cur, true
}

func render(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
