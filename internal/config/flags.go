package config

import (
	"flag"
	"fmt"
)

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-name store name
//	-file backing file path
//	-pretty indent saved JSON
//	-no-parse-to-number disable string to number coercion
//	-no-json-fixer disable repair of malformed JSON
//	-ignore-array skip type checks for arrays
//	-defaults JSON file with default values
//	-payload JSON file merged after loading
//	-c/-config json file path with settings
//	-version print build information
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("configstore", flag.ContinueOnError)
	fs.StringVar(&cfg.Store.Name, "name", "", "Store name")
	fs.StringVar(&cfg.Store.FilePath, "file", "", "Backing file path (default <name>.json)")
	fs.BoolVar(&cfg.Store.Prettify, "pretty", false, "Indent saved JSON")
	fs.BoolVar(&cfg.Store.NoParseToNumber, "no-parse-to-number", false, "Disable string to number coercion")
	fs.BoolVar(&cfg.Store.NoJSONFixer, "no-json-fixer", false, "Disable repair of malformed JSON")
	fs.BoolVar(&cfg.Store.IgnoreArray, "ignore-array", false, "Skip type checks for arrays")
	fs.StringVar(&cfg.DefaultsPath, "defaults", "", "JSON file with default values")
	fs.StringVar(&cfg.PayloadPath, "payload", "", "JSON file merged after loading")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON settings file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON settings file path (alias)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print build information")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}

	return cfg, nil
}
