package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON settings file.
type StructuredJSONConfig struct {
	Store struct {
		Name            string `json:"name"`
		FilePath        string `json:"file"`
		Prettify        bool   `json:"prettify"`
		NoParseToNumber bool   `json:"no_parse_to_number"`
		NoJSONFixer     bool   `json:"no_json_fixer"`
		IgnoreArray     bool   `json:"ignore_array"`
	} `json:"store,omitempty"`

	DefaultsPath string `json:"defaults"`
	PayloadPath  string `json:"payload"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Store: Store{
			Name:            jsonCfg.Store.Name,
			FilePath:        jsonCfg.Store.FilePath,
			Prettify:        jsonCfg.Store.Prettify,
			NoParseToNumber: jsonCfg.Store.NoParseToNumber,
			NoJSONFixer:     jsonCfg.Store.NoJSONFixer,
			IgnoreArray:     jsonCfg.Store.IgnoreArray,
		},
		DefaultsPath: jsonCfg.DefaultsPath,
		PayloadPath:  jsonCfg.PayloadPath,
		JSONFilePath: "",
	}

	return cfg, nil
}
