package store

import (
	"context"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// ListUsers returns every user ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes a user together with all of its fuel entries in one
	// transaction and returns the number of removed entries.
	DeleteUser(ctx context.Context, userID string) (int, error)
}

// FuelEntryRepository persists fuel entries as opaque JSON documents keyed by
// (id, user_id). Ordering by entry date is the caller's job since the date
// lives inside the document.
type FuelEntryRepository interface {
	// SaveEntries inserts all records or none.
	SaveEntries(ctx context.Context, records ...models.FuelEntryRecord) error
	GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntryRecord, error)
	ListEntriesByUser(ctx context.Context, userID string) ([]models.FuelEntryRecord, error)
	ListAllEntries(ctx context.Context) ([]models.FuelEntryRecord, error)
	UpdateEntry(ctx context.Context, record models.FuelEntryRecord) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
	// DeleteEntries removes the listed entries of one user in a single
	// transaction and returns the ids that existed, in request order.
	// Unknown ids are not an error.
	DeleteEntries(ctx context.Context, userID string, entryIDs []string) ([]string, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
