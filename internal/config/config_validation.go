// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultDSN            = "fuel_cost.db"
	DefaultHTTPAddress    = "0.0.0.0:3002"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "go-fuel-keeper"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultVersion        = "0.1.0"
	DefaultBcryptCost     = 10

	DefaultAdapterAddress = "localhost:3002"
	DefaultAdapterTimeout = 10 * time.Second

	defaultSessionFile = ".fuelctl/session.json"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Client.SessionFile == "" {
		cfg.Client.SessionFile = defaultSessionPath()
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Base(defaultSessionFile)
	}
	return filepath.Join(home, defaultSessionFile)
}

// validate checks that the merged server configuration can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if (cfg.App.AdminEmail == "") != (cfg.App.AdminPassword == "") {
		return ErrInvalidAdminConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.SessionFile == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
