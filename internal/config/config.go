// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-config-store/internal/store"

// StructuredConfig is the top-level settings container for the configstore
// tool. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON settings file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Store holds the construction settings of the configuration store.
	Store Store `envPrefix:"STORE_"`

	// DefaultsPath is an optional JSON file whose content seeds the store
	// before the backing file is loaded. Its values define the types the
	// backing file and the payload must match.
	DefaultsPath string `env:"DEFAULTS"`

	// PayloadPath is an optional JSON file merged into the store after the
	// backing file is loaded. The merged result is saved.
	PayloadPath string `env:"PAYLOAD"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion asks the tool to print build information and exit.
	// Only settable by the -version flag.
	ShowVersion bool
}

// Store mirrors the options of a configuration store.
//
// Options whose store default is true are expressed negatively here, so that
// the zero value of every field means "store default" and merging sources
// never has to tell an unset flag from an explicit false.
type Store struct {
	// Name identifies the store in diagnostics and derives the default
	// backing file name (<name>.json). Empty means the store default.
	Name string `env:"NAME"`

	// FilePath is the explicit backing file path. Empty means <name>.json.
	FilePath string `env:"FILE"`

	// Prettify indents saved JSON by two spaces.
	Prettify bool `env:"PRETTIFY"`

	// NoParseToNumber disables string to number coercion.
	NoParseToNumber bool `env:"NO_PARSE_TO_NUMBER"`

	// NoJSONFixer disables repair of malformed JSON.
	NoJSONFixer bool `env:"NO_JSON_FIXER"`

	// IgnoreArray exempts array values from type checks.
	IgnoreArray bool `env:"IGNORE_ARRAY"`
}

// ResolvedFilePath returns the path the store will read and write:
// FilePath when set, otherwise <name>.json.
func (s Store) ResolvedFilePath() string {
	if s.FilePath != "" {
		return s.FilePath
	}
	name := s.Name
	if name == "" {
		name = store.DefaultName
	}
	return name + ".json"
}

// GetStructuredConfig loads, merges, and validates the tool settings from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation. A -h / -help flag
// yields an error matching flag.ErrHelp.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
