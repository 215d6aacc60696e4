package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSyncConfigs indicates an unknown policy or a non-positive
	// sync timer.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidBackupConfigs indicates a non-positive backup interval or
	// retention count.
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrInvalidRemoteConfigs indicates an unknown gateway kind or missing
	// settings for the selected kind.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
