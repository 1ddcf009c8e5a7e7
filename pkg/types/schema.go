// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema is a free-form JSON-schema-shaped tree.
// The generator never inspects its contents; a nil Schema means absent.
type Schema map[string]any

// Integer is a whole number too large for int64, kept as its literal so it
// is written out digit for digit in both YAML and JSON.
type Integer string

// MarshalJSON writes the literal as a JSON number.
func (i Integer) MarshalJSON() ([]byte, error) {
	return []byte(i), nil
}

// MarshalYAML writes the literal as a plain scalar.
func (i Integer) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(i)}, nil
}

// NormalizeTree converts any map[any]any nodes produced by a YAML decoder into
// map[string]any so the tree can also be encoded as JSON. A json.Number
// becomes an int64 when it is whole, an Integer when it is whole but out of
// int64 range, and a float64 otherwise.
func NormalizeTree(v any) any {
	switch node := v.(type) {
	case json.Number:
		return normalizeNumber(node)
	case Schema:
		return Schema(normalizeMap(node))
	case map[string]any:
		return normalizeMap(node)
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[fmt.Sprint(k)] = NormalizeTree(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, val := range node {
			out[i] = NormalizeTree(val)
		}
		return out
	default:
		return v
	}
}

func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return Integer(n.String())
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = NormalizeTree(val)
	}
	return out
}
