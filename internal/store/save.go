package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Save writes the stored data to the backing file and returns the JSON text.
func (s *ConfigStore) Save() (string, error) {
	return s.Write(s.filePath, s.data)
}

// SaveTo writes the stored data to path without changing the backing path.
func (s *ConfigStore) SaveTo(path string) (string, error) {
	return s.Write(path, s.data)
}

// Write serializes content and replaces the file at path with it.
// An empty path means the backing path; nil content means the stored data.
// Returns the JSON text that was written.
func (s *ConfigStore) Write(path string, content any) (string, error) {
	if path == "" {
		path = s.filePath
	}
	if content == nil {
		content = s.data
	}

	text, err := s.marshal(content)
	if err != nil {
		return "", err
	}

	if err = s.fs.WriteFile(path, []byte(text), s.fileMode); err != nil {
		return "", err
	}

	return text, nil
}

// JSON returns the stored data serialized the same way Save writes it.
func (s *ConfigStore) JSON() (string, error) {
	return s.marshal(s.data)
}

// marshal encodes content with sorted keys, without HTML escaping and
// without a trailing newline. Indentation is two spaces when prettify is on.
func (s *ConfigStore) marshal(content any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if s.prettify {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(content); err != nil {
		return "", fmt.Errorf("error encoding %s: %w", s.name, err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
