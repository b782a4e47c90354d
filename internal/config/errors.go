package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdminConfigs indicates that only one of the admin email and
	// password is set.
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidClientConfigs indicates invalid fuelctl settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
