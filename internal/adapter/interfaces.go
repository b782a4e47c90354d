// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the fuel-keeper HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples fuelctl from
// the transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// ServerAdapter defines communication with the fuel-keeper server.
// Implementations are responsible for serialisation, authentication header
// management, request signing and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account and stores the issued token.
	SignUp(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// SignIn authenticates (or, for an unknown email, registers) the user and
	// stores the issued token.
	SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// AdminSignIn authenticates the administrator and stores the admin token.
	AdminSignIn(ctx context.Context, credentials models.Credentials) (models.AdminAuthResponse, error)

	CreateEntry(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error)

	// CreateEntries sends a signed bulk insert. The server stores all entries
	// or none.
	CreateEntries(ctx context.Context, request models.CreateFuelEntriesRequest) (models.BulkCreateResponse, error)

	ListEntries(ctx context.Context, userID string) ([]models.FuelEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error

	// DeleteEntries sends a signed bulk delete. Missing IDs are reported in
	// the response, not as an error.
	DeleteEntries(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResponse, error)

	// UserStats fetches the report scoped to userID.
	UserStats(ctx context.Context, userID string) (models.DashboardStats, error)

	// Dashboard fetches the full report. Requires an admin token.
	Dashboard(ctx context.Context) (models.DashboardStats, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
