package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/validators"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// FuelEntryValidationService rejects malformed requests before they reach
// the wrapped FuelEntryService. Every rejection wraps ErrInvalidDataProvided.
type FuelEntryValidationService struct {
	inner     FuelEntryService
	validator validators.Validator
}

func NewFuelEntryValidationService() FuelEntryServiceWrapper {
	return &FuelEntryValidationService{
		validator: validators.NewFuelEntryValidator(),
	}
}

func (v *FuelEntryValidationService) CreateEntry(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.FuelEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateEntry(ctx, request)
}

func (v *FuelEntryValidationService) CreateEntries(ctx context.Context, request models.CreateFuelEntriesRequest) ([]models.FuelEntry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateEntries(ctx, request)
}

func (v *FuelEntryValidationService) ListEntries(ctx context.Context, userID string) ([]models.FuelEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.ListEntries(ctx, userID)
}

func (v *FuelEntryValidationService) GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntry, error) {
	if err := v.validateKey(ctx, userID, entryID); err != nil {
		return models.FuelEntry{}, err
	}

	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *FuelEntryValidationService) UpdateEntry(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
	if err := v.validateKey(ctx, userID, entryID); err != nil {
		return models.FuelEntry{}, err
	}

	return v.inner.UpdateEntry(ctx, userID, entryID, update)
}

func (v *FuelEntryValidationService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := v.validateKey(ctx, userID, entryID); err != nil {
		return err
	}

	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func (v *FuelEntryValidationService) DeleteEntries(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.BulkDeleteResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteEntries(ctx, request)
}

func (v *FuelEntryValidationService) validateKey(ctx context.Context, userID, entryID string) error {
	key := models.FuelEntry{ID: entryID, UserID: userID}
	if err := v.validator.Validate(ctx, key, validators.FieldUserID, validators.FieldEntryID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *FuelEntryValidationService) Wrap(wrapper FuelEntryService) FuelEntryService {
	v.inner = wrapper
	return v
}
