// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Kind is the tag of a JSON value held in a configuration store.
// Every stored value is exactly one of these kinds; validation compares
// kinds instead of inspecting Go types at each call site.
type Kind int

const (
	// KindUnknown marks a Go value that has no JSON counterpart
	// (channels, functions, complex numbers).
	KindUnknown Kind = iota

	// KindNull represents JSON null.
	KindNull

	// KindBool represents JSON true / false.
	KindBool

	// KindNumber represents any JSON number. Go integer and float types all map here.
	KindNumber

	// KindString represents a JSON string.
	KindString

	// KindArray represents a JSON array.
	KindArray

	// KindObject represents a JSON object with string keys.
	KindObject
)

// String returns the JSON-facing name of the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind is a leaf (not an array or object).
func (k Kind) IsScalar() bool {
	return k == KindNull || k == KindBool || k == KindNumber || k == KindString
}

// KindOf returns the kind of v.
//
// Canonical values produced by [Normalize] are classified directly. Other Go
// numeric types are reported as [KindNumber] so that defaults written as
// plain Go literals (8080, 0.5) still classify correctly.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindUnknown
	}
}

// Normalize converts v into the canonical JSON representation:
// map[string]any, []any, float64, string, bool or nil.
//
// Maps and slices are rebuilt, so the result never aliases v. Values that are
// not canonical (structs, typed maps, typed slices) are converted through a
// JSON round-trip. Returns an error if v cannot be represented as JSON.
func Normalize(v any) (any, error) {
	switch value := v.(type) {
	case nil, bool, string, float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return nil, fmt.Errorf("error normalizing number %q: %w", value.String(), err)
		}
		return f, nil
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("error normalizing value of type %T: %w", value, err)
		}
		var out any
		if err = json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("error normalizing value of type %T: %w", value, err)
		}
		return out, nil
	}
}

// Clone returns a deep copy of a canonical value. Objects and arrays are
// copied recursively; leaves are immutable and returned as-is.
func Clone(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return CloneObject(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = Clone(item)
		}
		return out
	default:
		return value
	}
}

// CloneObject deep-copies a JSON object. A nil map yields an empty, non-nil map.
func CloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = Clone(item)
	}
	return out
}
