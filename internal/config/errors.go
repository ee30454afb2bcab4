package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// settings are inconsistent.
var (
	// ErrInvalidStoreConfigs indicates invalid store settings
	// (for example, a store name containing a path separator).
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidPayloadConfigs indicates a payload file that cannot be used
	// (for example, the same file as the backing file).
	ErrInvalidPayloadConfigs = errors.New("invalid payload configuration")
)
