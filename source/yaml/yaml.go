// Package yaml decodes YAML input into the generic value space consumed by
// the validating decoder, so YAML-carried documents run through the identical
// checks as JSON ones.
package yaml

import (
	"bytes"
	"errors"
	"io"

	goyaml "gopkg.in/yaml.v3"
)

// Value decodes the first YAML document in data as a generic value.
// Mapping keys are normalized to strings; non-string keys are dropped.
func Value(data []byte) (any, error) {
	dec := goyaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return normalizeValue(node), nil
}

// Values decodes a multi-document YAML stream into generic values.
func Values(data []byte) ([]any, error) {
	dec := goyaml.NewDecoder(bytes.NewReader(data))
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, normalizeValue(node))
	}
}

// anyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
