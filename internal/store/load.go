package store

import (
	"encoding/json"
	"fmt"
)

// FromJSON parses text and merges it into the store, see [ConfigStore.FromMap].
//
// With the JSON fixer enabled, empty text is read as "{}" and the text is
// run through the repair step first. When the repair changed anything and
// the exact backing path is known, the repaired structure is written back
// to that path before validation.
//
// Returns a copy of the updated data. On error nothing is merged.
func (s *ConfigStore) FromJSON(text string) (map[string]any, error) {
	if s.allowJSONFixer {
		repaired, err := s.repair(text)
		if err != nil {
			return nil, err
		}
		text = repaired
	}

	payload, err := s.parse(text)
	if err != nil {
		return nil, err
	}

	return s.FromMap(payload)
}

// FromMap validates payload against the stored data and, if every key
// passes, merges the validated copy into the store. Merging is shallow:
// each top-level key of payload replaces the stored value wholesale.
//
// payload is not modified. Returns a copy of the updated data. On error
// nothing is merged.
func (s *ConfigStore) FromMap(payload map[string]any) (map[string]any, error) {
	validated, err := s.ValidateTypes(payload)
	if err != nil {
		return nil, err
	}

	for key, value := range validated {
		s.data[key] = value
	}

	return s.Data(), nil
}

// FromFile loads the backing file and merges it via [ConfigStore.FromJSON].
//
// A non-empty path replaces the backing path and marks it as exactly known
// for the rest of the store's life. If the file does not exist, it is first
// created from the current data.
func (s *ConfigStore) FromFile(path string) (map[string]any, error) {
	if path != "" {
		s.filePath = path
		s.exactPath = true
	}

	exists, err := s.fs.Exists(s.filePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.log.Debug().Str("path", s.filePath).Msg("config file not found, creating it")
		if _, err = s.Save(); err != nil {
			return nil, err
		}
	}

	raw, err := s.fs.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}

	return s.FromJSON(string(raw))
}

// repair runs text through the fixer. A fixer failure is not fatal: the
// original text goes on to the strict parser, which reports the error.
func (s *ConfigStore) repair(text string) (string, error) {
	if text == "" {
		text = "{}"
	}

	res, err := s.fixer.Fix(text)
	if err != nil {
		s.log.Debug().Err(err).Msg("json could not be repaired")
		return text, nil
	}
	if !res.Changed {
		return text, nil
	}

	s.log.Info().Str("path", s.filePath).Msg("fixed json")
	raw, err := json.Marshal(res.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrParse, s.name, err)
	}

	if s.exactPath {
		s.log.Info().Str("path", s.filePath).Msg("saving fixed json")
		if _, err = s.Write(s.filePath, res.Data); err != nil {
			return "", err
		}
	}

	return string(raw), nil
}

func (s *ConfigStore) parse(text string) (map[string]any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, s.name, err)
	}

	payload, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, s.name, ErrNotObject)
	}

	return payload, nil
}
