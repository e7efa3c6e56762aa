package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidClientConfigs indicates unusable client settings
	// (for example, a negative request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidSandboxConfigs indicates unusable sandbox settings
	// (for example, a malformed listen address).
	ErrInvalidSandboxConfigs = errors.New("invalid sandbox configuration")
)
