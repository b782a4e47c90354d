// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-fuel-keeper server and the fuelctl client. It is populated by merging
// values from a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// admin credentials and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and CORS settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings fuelctl uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds fuelctl-only settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header on fuel entry writes). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BcryptCost is the work factor for password hashing.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// AdminEmail and AdminPassword are the credentials accepted by
	// /api/admin/signin. Both empty disables the admin surface.
	// Env: APP_ADMIN_EMAIL, APP_ADMIN_PASSWORD
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3002").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	// "*" allows any origin.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL, anything else is treated as a SQLite file path
	// (e.g. "fuel_cost.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the outbound settings fuelctl uses to reach the server.
type Adapter struct {
	// HTTPAddress is the base address of the server, with or without a
	// scheme (e.g. "localhost:3002" or "https://fuel.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds fuelctl-only settings.
type Client struct {
	// SessionFile is where fuelctl keeps the token of the signed-in user.
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. See the package documentation for source precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
}
