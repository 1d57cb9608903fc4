package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty profile identifier).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid HTTP adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidDisplayConfigs indicates invalid listing settings
	// (for example, a negative limit).
	ErrInvalidDisplayConfigs = errors.New("invalid display configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings
	// (for example, an unknown level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
