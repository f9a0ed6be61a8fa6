package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid token settings (for example,
	// a missing sign key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidServerConfigs indicates invalid server settings (for
	// example, a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
