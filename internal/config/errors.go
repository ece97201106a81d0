package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid login service settings
	// (for example, missing HTTP address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background pool settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLoginConfigs indicates invalid login settings
	// (for example, negative timeout or missing token key).
	ErrInvalidLoginConfigs = errors.New("invalid login configuration")
	// ErrInvalidStubServerConfigs indicates invalid stub server settings.
	ErrInvalidStubServerConfigs = errors.New("invalid stub server configuration")
)
