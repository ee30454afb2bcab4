package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-store/models"
)

// ValidateTypes checks candidate against the stored data and returns a
// validated copy of it. candidate itself is never modified.
//
// A key already stored fixes the kind of value it accepts. Nested objects
// are checked recursively. Unknown keys are accepted and logged. With
// ignore-array enabled, array values are accepted without checks. With
// parse-to-number enabled, a numeric string aimed at a number is converted
// in the returned copy.
//
// The first conflicting key aborts the walk with a [*TypeMismatchError].
func (s *ConfigStore) ValidateTypes(candidate map[string]any) (map[string]any, error) {
	n, err := models.Normalize(candidate)
	if err != nil {
		return nil, err
	}
	return s.validateObject(n.(map[string]any), s.data, "")
}

// validateObject walks candidate against base. candidate is already a
// private copy, so coerced values are written into it directly.
func (s *ConfigStore) validateObject(candidate, base map[string]any, prefix string) (map[string]any, error) {
	for key, value := range candidate {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		kind := models.KindOf(value)
		if s.ignoreArray && kind == models.KindArray {
			s.log.Warn().Str("key", path).Msg("key is an array and checking will be ignored")
			continue
		}

		baseValue, known := base[key]
		if !known {
			s.log.Warn().Str("key", path).Msg("key is not defined as a default value")
			continue
		}

		baseKind := models.KindOf(baseValue)
		switch {
		case kind == models.KindNull:
			continue
		case kind == models.KindObject:
			if baseKind != models.KindObject {
				return nil, s.mismatch(path, baseKind, kind)
			}
			validated, err := s.validateObject(value.(map[string]any), baseValue.(map[string]any), path)
			if err != nil {
				return nil, err
			}
			candidate[key] = validated
		case kind == baseKind:
			continue
		case s.allowParseToNumber && kind == models.KindString && baseKind == models.KindNumber:
			number, ok := parseNumber(value.(string))
			if !ok {
				return nil, s.mismatch(path, baseKind, kind)
			}
			candidate[key] = number
		default:
			return nil, s.mismatch(path, baseKind, kind)
		}
	}

	return candidate, nil
}

func (s *ConfigStore) mismatch(key string, expected, actual models.Kind) error {
	return &TypeMismatchError{
		Store:    s.name,
		Key:      key,
		Expected: expected,
		Actual:   actual,
	}
}

// parseNumber accepts decimal and exponent notation surrounded by optional
// whitespace. Empty strings, NaN and infinities are rejected since they have
// no JSON representation.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
