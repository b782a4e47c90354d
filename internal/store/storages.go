package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
)

// Storages groups the repositories built over one database connection.
type Storages struct {
	UserRepository      UserRepository
	FuelEntryRepository FuelEntryRepository

	db *DB
}

// NewStorages connects to the database selected by cfg, applies migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		FuelEntryRepository: NewFuelEntryRepository(db, log),
		db:                  db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
