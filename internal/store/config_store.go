// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-config-store/internal/logger"
	"github.com/MKhiriev/go-config-store/internal/repair"
	"github.com/MKhiriev/go-config-store/models"
)

// DefaultName is the store name used when none is given.
const DefaultName = "config"

// DefaultFileMode is the permission used when the backing file is created.
const DefaultFileMode os.FileMode = 0o644

// ConfigStore holds a JSON configuration object in memory and keeps it in
// sync with a backing file.
//
// The in-memory data is both the live configuration and the shape incoming
// payloads are validated against: a key already present fixes the kind of
// value it accepts, while unknown keys are taken as-is.
//
// A ConfigStore is not safe for concurrent use. Callers sharing one instance
// between goroutines must serialize access themselves.
type ConfigStore struct {
	data map[string]any
	name string

	// filePath is the backing file; it starts as name + ".json".
	filePath string
	// exactPath becomes true the first time FromFile is called with an
	// explicit path and never reverts. Only while it is true does FromJSON
	// write a repaired payload straight back to filePath.
	exactPath bool

	prettify           bool
	allowParseToNumber bool
	allowJSONFixer     bool
	ignoreArray        bool
	fileMode           os.FileMode

	fs    FileSystem
	fixer repair.Fixer
	log   *logger.Logger
}

// Option configures a [ConfigStore] at construction time.
type Option func(*ConfigStore)

// WithPrettify controls whether saved JSON is indented by two spaces.
// Default false.
func WithPrettify(enabled bool) Option {
	return func(s *ConfigStore) { s.prettify = enabled }
}

// WithParseToNumber controls whether an incoming string is converted to a
// number when the stored value for the same key is a number. Default true.
func WithParseToNumber(enabled bool) Option {
	return func(s *ConfigStore) { s.allowParseToNumber = enabled }
}

// WithJSONFixer controls whether payload text is repaired before parsing.
// Default true.
func WithJSONFixer(enabled bool) Option {
	return func(s *ConfigStore) { s.allowJSONFixer = enabled }
}

// WithIgnoreArray controls whether array values skip type validation.
// Default false.
func WithIgnoreArray(enabled bool) Option {
	return func(s *ConfigStore) { s.ignoreArray = enabled }
}

// WithFileSystem replaces the local-disk file system.
func WithFileSystem(fs FileSystem) Option {
	return func(s *ConfigStore) { s.fs = fs }
}

// WithFixer replaces the default JSON repair implementation.
func WithFixer(f repair.Fixer) Option {
	return func(s *ConfigStore) { s.fixer = f }
}

// WithLogger sets the logger that receives diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(s *ConfigStore) { s.log = l }
}

// WithFileMode sets the permission used when the backing file is created.
func WithFileMode(mode os.FileMode) Option {
	return func(s *ConfigStore) { s.fileMode = mode }
}

// New creates an empty store. An empty name falls back to [DefaultName];
// the backing file defaults to name + ".json".
func New(name string, opts ...Option) *ConfigStore {
	if name == "" {
		name = DefaultName
	}

	s := &ConfigStore{
		data:               make(map[string]any),
		name:               name,
		filePath:           name + ".json",
		allowParseToNumber: true,
		allowJSONFixer:     true,
		fileMode:           DefaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		s.fs = NewOSFileSystem()
	}
	if s.fixer == nil {
		s.fixer = repair.NewJSONRepairer()
	}
	if s.log == nil {
		s.log = logger.Global()
	}
	s.log = &logger.Logger{Logger: s.log.With().Str("store", name).Logger()}

	return s
}

// Name returns the store name.
func (s *ConfigStore) Name() string {
	return s.name
}

// Path returns the current backing file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// ExactPathKnown reports whether FromFile has been called with an explicit path.
func (s *ConfigStore) ExactPathKnown() bool {
	return s.exactPath
}

// Data returns a deep copy of the stored configuration.
func (s *ConfigStore) Data() map[string]any {
	return models.CloneObject(s.data)
}

// Get returns a deep copy of the value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return models.Clone(v), true
}

// Set stores value under key without validation. It is meant for seeding
// defaults: the kind of value becomes the kind later payloads must match.
func (s *ConfigStore) Set(key string, value any) error {
	n, err := models.Normalize(value)
	if err != nil {
		return fmt.Errorf("error setting %s key %s: %w", s.name, key, err)
	}
	s.data[key] = n
	return nil
}

// SetDefaults stores every entry of defaults, see [ConfigStore.Set].
// Nothing is stored if any value cannot be represented as JSON.
func (s *ConfigStore) SetDefaults(defaults map[string]any) error {
	n, err := models.Normalize(defaults)
	if err != nil {
		return fmt.Errorf("error setting %s defaults: %w", s.name, err)
	}
	for key, value := range n.(map[string]any) {
		s.data[key] = value
	}
	return nil
}

// Decode copies the stored configuration into target, which must be a
// pointer to a struct or map with JSON tags.
func (s *ConfigStore) Decode(target any) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", s.name, err)
	}
	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("error decoding %s: %w", s.name, err)
	}
	return nil
}
