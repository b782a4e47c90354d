// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// fuelEntryRepository is the SQL implementation of [FuelEntryRepository]
// over the "fuel_entries" table.
type fuelEntryRepository struct {
	db      *DB
	logger  *logger.Logger
	queries queries
}

// NewFuelEntryRepository constructs a [FuelEntryRepository] backed by the
// provided database connection and logger.
func NewFuelEntryRepository(db *DB, logger *logger.Logger) FuelEntryRepository {
	logger.Debug().Msg("creating fuel entry repository")
	return &fuelEntryRepository{
		db:      db,
		logger:  logger,
		queries: queries{db.builder},
	}
}

// SaveEntries persists one or more new fuel entries.
//
// Routing strategy:
//   - Exactly one record → [saveSingleEntry] (plain INSERT, no transaction).
//   - Two or more records → [saveMultipleEntries] (transaction with a prepared statement).
func (f *fuelEntryRepository) SaveEntries(ctx context.Context, records ...models.FuelEntryRecord) error {
	switch len(records) {
	case 0:
		return nil
	case 1:
		return f.saveSingleEntry(ctx, records[0])
	default:
		return f.saveMultipleEntries(ctx, records)
	}
}

func (f *fuelEntryRepository) saveSingleEntry(ctx context.Context, record models.FuelEntryRecord) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("entry_id", record.ID).
		Str("user_id", record.UserID).
		Msg("saving single fuel entry")

	query, args, err := f.queries.insertFuelEntry(record)
	if err != nil {
		return err
	}

	result, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.saveSingleEntry").
			Str("entry_id", record.ID).
			Msg("failed to insert fuel entry")
		return f.insertError(err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrFuelEntriesNotSaved
	}

	return nil
}

// saveMultipleEntries inserts all records inside one transaction. The
// transaction is rolled back (via defer) as soon as one insert fails.
func (f *fuelEntryRepository) saveMultipleEntries(ctx context.Context, records []models.FuelEntryRecord) error {
	log := logger.FromContext(ctx)

	query, _, err := f.queries.insertFuelEntry(records[0])
	if err != nil {
		return err
	}

	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.saveMultipleEntries").
			Int("entries_count", len(records)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.saveMultipleEntries").
			Msg("failed to prepare insert statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, record := range records {
		log.Debug().
			Str("func", "fuelEntryRepository.saveMultipleEntries").
			Int("iteration", idx+1).
			Int("total", len(records)).
			Str("entry_id", record.ID).
			Msg("saving fuel entry in transaction")

		if _, err := stmt.ExecContext(ctx, record.ID, record.UserID, string(record.Data)); err != nil {
			log.Err(err).
				Str("func", "fuelEntryRepository.saveMultipleEntries").
				Int("iteration", idx+1).
				Str("entry_id", record.ID).
				Msg("failed to insert fuel entry")
			return fmt.Errorf("failed to save fuel entry at index %d: %w", idx, f.insertError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.saveMultipleEntries").
			Int("entries_count", len(records)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "fuelEntryRepository.saveMultipleEntries").
		Int("entries_count", len(records)).
		Msg("successfully saved fuel entries")

	return nil
}

func (f *fuelEntryRepository) insertError(err error) error {
	switch f.db.classify(err) {
	case ForeignKeyViolation:
		return ErrUnknownUser
	case UniqueViolation:
		return ErrFuelEntryAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// GetEntry returns one entry of userID or [ErrFuelEntryNotFound].
func (f *fuelEntryRepository) GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.selectFuelEntry(userID, entryID)
	if err != nil {
		return models.FuelEntryRecord{}, err
	}

	var record models.FuelEntryRecord
	err = f.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.UserID, &record.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FuelEntryRecord{}, ErrFuelEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.GetEntry").
			Str("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to scan fuel entry row")
		return models.FuelEntryRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// ListEntriesByUser returns every entry of userID. An empty slice means the
// user has no entries.
func (f *fuelEntryRepository) ListEntriesByUser(ctx context.Context, userID string) ([]models.FuelEntryRecord, error) {
	query, args, err := f.queries.selectFuelEntries(userID)
	if err != nil {
		return nil, err
	}

	return f.listEntries(ctx, "fuelEntryRepository.ListEntriesByUser", query, args)
}

// ListAllEntries returns the entries of every user. The dashboard reads the
// whole table on each request.
func (f *fuelEntryRepository) ListAllEntries(ctx context.Context) ([]models.FuelEntryRecord, error) {
	query, args, err := f.queries.selectFuelEntries("")
	if err != nil {
		return nil, err
	}

	return f.listEntries(ctx, "fuelEntryRepository.ListAllEntries", query, args)
}

func (f *fuelEntryRepository) listEntries(ctx context.Context, funcName, query string, args []any) ([]models.FuelEntryRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := f.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for fuel entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FuelEntryRecord, 0, 50)
	for rows.Next() {
		var record models.FuelEntryRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Data); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan fuel entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// UpdateEntry replaces the document of an existing entry.
func (f *fuelEntryRepository) UpdateEntry(ctx context.Context, record models.FuelEntryRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.updateFuelEntry(record)
	if err != nil {
		return err
	}

	result, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.UpdateEntry").
			Str("entry_id", record.ID).
			Msg("failed to update fuel entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// DeleteEntry removes one entry of userID or returns [ErrFuelEntryNotFound].
func (f *fuelEntryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.deleteFuelEntries(userID, entryID)
	if err != nil {
		return err
	}

	result, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.DeleteEntry").
			Str("entry_id", entryID).
			Msg("failed to delete fuel entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// DeleteEntries looks up which of entryIDs exist and deletes them in the
// same transaction, so the returned ids are exactly the removed ones.
func (f *fuelEntryRepository) DeleteEntries(ctx context.Context, userID string, entryIDs []string) ([]string, error) {
	log := logger.FromContext(ctx)

	if len(entryIDs) == 0 {
		return []string{}, nil
	}

	selectQuery, selectArgs, err := f.queries.selectFuelEntryIDs(userID, entryIDs)
	if err != nil {
		return nil, err
	}
	deleteQuery, deleteArgs, err := f.queries.deleteFuelEntries(userID, entryIDs...)
	if err != nil {
		return nil, err
	}

	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.DeleteEntries").
			Int("entries_count", len(entryIDs)).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, selectQuery, selectArgs...)
	if err != nil {
		log.Err(err).Str("func", "fuelEntryRepository.DeleteEntries").Msg("failed to select existing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	existing := make(map[string]struct{}, len(entryIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		existing[id] = struct{}{}
	}
	rowsErr := rows.Err()
	rows.Close()
	if rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "fuelEntryRepository.DeleteEntries").Msg("failed to delete entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "fuelEntryRepository.DeleteEntries").
			Int("entries_count", len(entryIDs)).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	deleted := make([]string, 0, len(existing))
	for _, id := range entryIDs {
		if _, ok := existing[id]; ok {
			deleted = append(deleted, id)
			// duplicates in the request are reported once
			delete(existing, id)
		}
	}

	log.Info().
		Str("func", "fuelEntryRepository.DeleteEntries").
		Str("user_id", userID).
		Int("requested", len(entryIDs)).
		Int("deleted", len(deleted)).
		Msg("fuel entries deleted")

	return deleted, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFuelEntryNotFound
	}
	return nil
}
