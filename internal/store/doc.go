// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements [ConfigStore], a JSON configuration object kept in
// memory and persisted to a single file.
//
// Loading is a two-phase operation: the incoming payload is first validated
// against the data already held by the store, producing a private validated
// copy, and only then merged. A failed load leaves the store untouched.
//
// Validation rules, applied per key:
//  1. Arrays skip validation when ignore-array is enabled.
//  2. Keys the store does not know are accepted and logged.
//  3. A null value is accepted for any key; a null default accepts only null.
//  4. Objects must meet objects and are checked recursively.
//  5. Equal kinds are accepted; arrays are not checked element by element.
//  6. A numeric string aimed at a number is converted when parse-to-number
//     is enabled.
//  7. Anything else fails with [*TypeMismatchError].
//
// Typical use:
//
//	s := store.New("app", store.WithPrettify(true))
//	_ = s.SetDefaults(map[string]any{"port": 8080, "debug": false})
//	if _, err := s.FromFile(""); err != nil {
//		return err
//	}
package store
