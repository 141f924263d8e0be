package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCatalogConfigs indicates that no catalog CSV path was
	// provided. The server cannot start without a source dataset.
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
)
