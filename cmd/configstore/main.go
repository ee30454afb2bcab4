// Command configstore loads a JSON configuration file through a validating
// store, optionally seeds it with defaults and merges a payload into it, and
// prints the result.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-config-store/internal/config"
	"github.com/MKhiriev/go-config-store/internal/logger"
	"github.com/MKhiriev/go-config-store/internal/repair"
	"github.com/MKhiriev/go-config-store/internal/store"
	"github.com/MKhiriev/go-config-store/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("configstore")

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("configstore failed")
	}
}

func run(args []string, stdout io.Writer, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if cfg.ShowVersion {
		_, err = fmt.Fprint(stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return err
	}

	s := store.New(cfg.Store.Name, storeOptions(cfg.Store, log)...)

	if cfg.DefaultsPath != "" {
		defaults, err := readObject(cfg.DefaultsPath, !cfg.Store.NoJSONFixer, log)
		if err != nil {
			return fmt.Errorf("error loading defaults: %w", err)
		}
		if err = s.SetDefaults(defaults); err != nil {
			return fmt.Errorf("error loading defaults: %w", err)
		}
	}

	if _, err = s.FromFile(cfg.Store.FilePath); err != nil {
		return fmt.Errorf("error loading %s: %w", s.Path(), err)
	}

	if cfg.PayloadPath != "" {
		payload, err := readObject(cfg.PayloadPath, !cfg.Store.NoJSONFixer, log)
		if err != nil {
			return fmt.Errorf("error merging payload: %w", err)
		}
		if _, err = s.FromMap(payload); err != nil {
			return fmt.Errorf("error merging payload: %w", err)
		}
		if _, err = s.Save(); err != nil {
			return fmt.Errorf("error saving %s: %w", s.Path(), err)
		}
		log.Info().Str("path", s.Path()).Str("payload", cfg.PayloadPath).Msg("payload merged")
	}

	out, err := s.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func storeOptions(cfg config.Store, log *logger.Logger) []store.Option {
	return []store.Option{
		store.WithPrettify(cfg.Prettify),
		store.WithParseToNumber(!cfg.NoParseToNumber),
		store.WithJSONFixer(!cfg.NoJSONFixer),
		store.WithIgnoreArray(cfg.IgnoreArray),
		store.WithLogger(log),
	}
}

// readObject reads path as a JSON object. The text is decoded here rather
// than through s.FromJSON, which would write a repaired file over the
// backing file.
func readObject(path string, fix bool, log *logger.Logger) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	payload, changed, err := decodeObject(string(raw), fix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if changed {
		log.Info().Str("path", path).Msg("fixed json")
	}

	return payload, nil
}

// decodeObject parses text as a JSON object, repairing it first when fix is
// set. changed reports whether the repair modified the text.
func decodeObject(text string, fix bool) (payload map[string]any, changed bool, err error) {
	var parsed any

	if fix {
		if text == "" {
			text = "{}"
		}
		res, err := repair.NewJSONRepairer().Fix(text)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %w", store.ErrParse, err)
		}
		parsed, changed = res.Data, res.Changed
	} else if err = json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, false, fmt.Errorf("%w: %w", store.ErrParse, err)
	}

	payload, ok := parsed.(map[string]any)
	if !ok {
		return nil, false, store.ErrNotObject
	}

	return payload, changed, nil
}
