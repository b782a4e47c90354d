package service

import (
	"context"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// AuthService issues and checks credentials.
type AuthService interface {
	// SignUp registers a new account. A taken email yields
	// store.ErrEmailAlreadyExists.
	SignUp(ctx context.Context, credentials models.Credentials) (models.User, error)
	// SignIn verifies the password of an existing account. An unknown email
	// registers the account on the spot; created reports that case.
	SignIn(ctx context.Context, credentials models.Credentials) (user models.User, created bool, err error)
	// AdminSignIn checks credentials against the configured administrator
	// and returns an admin token.
	AdminSignIn(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FuelEntryService is the CRUD surface over one user's fuel entries.
type FuelEntryService interface {
	CreateEntry(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error)
	// CreateEntries stores every entry or none.
	CreateEntries(ctx context.Context, request models.CreateFuelEntriesRequest) ([]models.FuelEntry, error)
	// ListEntries returns the entries of userID, newest first.
	ListEntries(ctx context.Context, userID string) ([]models.FuelEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	DeleteEntries(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error)
}

// ReportService builds dashboard reports from the stored corpus.
type ReportService interface {
	// Dashboard aggregates every user and entry.
	Dashboard(ctx context.Context) (models.DashboardStats, error)
	// UserReport runs the same aggregation scoped to one user.
	UserReport(ctx context.Context, userID string) (models.DashboardStats, error)
}

// UserAdminService is the account management surface of the admin API.
type UserAdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes the user with its entries and returns how many
	// entries went with it.
	DeleteUser(ctx context.Context, userID string) (int, error)
}

// AppInfoService exposes version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// FuelEntryServiceWrapper defines middleware composition for FuelEntryService.
// Implementations wrap an existing FuelEntryService to add behavior such as
// logging or validating.
type FuelEntryServiceWrapper interface {
	Wrap(FuelEntryService) FuelEntryService // returns a decorated FuelEntryService applying additional behavior
}
