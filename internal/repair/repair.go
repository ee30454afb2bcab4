// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package repair provides best-effort correction of malformed JSON text
// before it is handed to a strict parser.
//
// The default [Fixer] is backed by github.com/kaptinlin/jsonrepair and
// handles the usual hand-editing mistakes found in configuration files:
// trailing commas, single-quoted strings, unquoted keys, comments and
// missing commas between members.
package repair

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

//go:generate mockgen -source=repair.go -destination=../mock/fixer_mock.go -package=mock

// Result is the outcome of a repair attempt.
type Result struct {
	// Data is the parsed structure of the (possibly repaired) text.
	Data any

	// Changed reports whether the input had to be modified to become valid JSON.
	Changed bool
}

// Fixer turns JSON-like text into a parsed structure, repairing it when needed.
// Implementations must not fail on input that is merely malformed but
// recoverable; an error means the text could not be repaired at all.
type Fixer interface {
	Fix(text string) (Result, error)
}

// JSONRepairer is the default [Fixer].
type JSONRepairer struct{}

// NewJSONRepairer returns the default [Fixer].
func NewJSONRepairer() Fixer {
	return &JSONRepairer{}
}

// Fix parses text as-is when it is already valid JSON and reports
// Changed=false. Otherwise the text is repaired and parsed, and
// Changed is true.
func (r *JSONRepairer) Fix(text string) (Result, error) {
	if json.Valid([]byte(text)) {
		data, err := decode(text)
		if err != nil {
			return Result{}, err
		}
		return Result{Data: data}, nil
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return Result{}, fmt.Errorf("error repairing json: %w", err)
	}

	data, err := decode(repaired)
	if err != nil {
		return Result{}, err
	}

	return Result{Data: data, Changed: true}, nil
}

func decode(text string) (any, error) {
	var data any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("error decoding repaired json: %w", err)
	}
	return data, nil
}
