// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
//
// The store name must not contain a path separator since it derives the
// backing file name. A payload file must not be the backing file itself:
// saving the merged result would overwrite the payload before it is read.
func (cfg *StructuredConfig) validate() error {
	if strings.ContainsAny(cfg.Store.Name, `/\`) {
		return fmt.Errorf("%w: name %q contains a path separator", ErrInvalidStoreConfigs, cfg.Store.Name)
	}

	if cfg.PayloadPath != "" &&
		filepath.Clean(cfg.PayloadPath) == filepath.Clean(cfg.Store.ResolvedFilePath()) {
		return fmt.Errorf("%w: payload %q is the backing file", ErrInvalidPayloadConfigs, cfg.PayloadPath)
	}

	return nil
}
