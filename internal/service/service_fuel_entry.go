// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

type fuelEntryService struct {
	fuelEntryRepository store.FuelEntryRepository
	userRepository      store.UserRepository
	ids                 *utils.UUIDGenerator

	logger *logger.Logger
}

func NewFuelEntryService(fuelEntryRepository store.FuelEntryRepository, userRepository store.UserRepository, logger *logger.Logger) FuelEntryService {
	return &fuelEntryService{
		fuelEntryRepository: fuelEntryRepository,
		userRepository:      userRepository,
		ids:                 utils.NewUUIDGenerator(),
		logger:              logger,
	}
}

func (f *fuelEntryService) CreateEntry(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error) {
	entries, err := f.create(ctx, request.UserID, request.FuelEntryData)
	if err != nil {
		return models.FuelEntry{}, err
	}
	return entries[0], nil
}

func (f *fuelEntryService) CreateEntries(ctx context.Context, request models.CreateFuelEntriesRequest) ([]models.FuelEntry, error) {
	return f.create(ctx, request.UserID, request.Entries...)
}

// create assigns ids, encodes and stores the entries in one call so that a
// bulk request is written all-or-nothing.
func (f *fuelEntryService) create(ctx context.Context, userID string, data ...models.FuelEntryData) ([]models.FuelEntry, error) {
	log := logger.FromContext(ctx)

	if err := f.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	entries := make([]models.FuelEntry, 0, len(data))
	records := make([]models.FuelEntryRecord, 0, len(data))
	for _, d := range data {
		entry := models.NewFuelEntry(f.ids.Generate(), userID, d)
		record, err := models.EncodeFuelEntry(entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		records = append(records, record)
	}

	if err := f.fuelEntryRepository.SaveEntries(ctx, records...); err != nil {
		log.Err(err).Str("func", "*fuelEntryService.create").Str("user_id", userID).Int("entries_count", len(records)).Msg("error saving fuel entries")
		if errors.Is(err, store.ErrUnknownUser) {
			return nil, fmt.Errorf("%w: %w", ErrUnknownUser, err)
		}
		return nil, err
	}

	return entries, nil
}

func (f *fuelEntryService) ensureUserExists(ctx context.Context, userID string) error {
	_, err := f.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}
	return err
}

// ListEntries skips stored documents that cannot be decoded; they are logged
// and left out rather than failing the whole list.
func (f *fuelEntryService) ListEntries(ctx context.Context, userID string) ([]models.FuelEntry, error) {
	records, err := f.fuelEntryRepository.ListEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, _ := decodeRecords(ctx, records)
	slices.SortStableFunc(entries, func(a, b models.FuelEntry) int {
		return b.DateTime.Compare(a.DateTime)
	})

	return entries, nil
}

func (f *fuelEntryService) GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntry, error) {
	record, err := f.fuelEntryRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.FuelEntry{}, err
	}

	entry, err := record.Decode()
	if err != nil {
		return models.FuelEntry{}, fmt.Errorf("%w: %w", ErrMalformedEntry, err)
	}

	return entry, nil
}

// UpdateEntry reads the stored entry, applies the partial update and writes
// the whole document back.
func (f *fuelEntryService) UpdateEntry(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := f.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.FuelEntry{}, err
	}

	entry.Apply(update)

	record, err := models.EncodeFuelEntry(entry)
	if err != nil {
		return models.FuelEntry{}, err
	}

	if err := f.fuelEntryRepository.UpdateEntry(ctx, record); err != nil {
		log.Err(err).Str("func", "*fuelEntryService.UpdateEntry").Str("entry_id", entryID).Msg("error updating fuel entry")
		return models.FuelEntry{}, err
	}

	return entry, nil
}

func (f *fuelEntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return f.fuelEntryRepository.DeleteEntry(ctx, userID, entryID)
}

func (f *fuelEntryService) DeleteEntries(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error) {
	if err := f.ensureUserExists(ctx, request.UserID); err != nil {
		return models.BulkDeleteResult{}, err
	}

	deleted, err := f.fuelEntryRepository.DeleteEntries(ctx, request.UserID, request.EntryIDs)
	if err != nil {
		return models.BulkDeleteResult{}, err
	}

	return models.BulkDeleteResult{DeletedIDs: deleted}, nil
}

// decodeRecords decodes every record it can and returns how many it had to
// skip.
func decodeRecords(ctx context.Context, records []models.FuelEntryRecord) ([]models.FuelEntry, int) {
	log := logger.FromContext(ctx)

	entries := make([]models.FuelEntry, 0, len(records))
	skipped := 0
	for _, record := range records {
		entry, err := record.Decode()
		if err != nil {
			skipped++
			log.Warn().Err(err).
				Str("func", "decodeRecords").
				Str("entry_id", record.ID).
				Str("user_id", record.UserID).
				Msg("skipping malformed fuel entry")
			continue
		}
		entries = append(entries, entry)
	}

	return entries, skipped
}
