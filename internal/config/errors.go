package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty contract identity or default owner).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates invalid event log settings
	// (for example, a non-positive capacity).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
