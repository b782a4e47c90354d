package validators

import (
	"context"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner identifier of an entry or request.
	FieldUserID = "user_id"

	// FieldEntryID targets the server-assigned entry identifier.
	FieldEntryID = "id"

	// FieldDateTime targets the fill-up timestamp.
	FieldDateTime = "date_time"

	// FieldEntries targets the entry list of a bulk create request.
	FieldEntries = "entries"

	// FieldEntryIDs targets the id list of a bulk delete request.
	FieldEntryIDs = "entry_ids"

	FieldEmail    = "email"
	FieldPassword = "password"
)

// FuelEntryValidator checks the requests of the fuel entry and auth flows.
//
// Only presence is checked. Numeric fields are stored as sent: the
// total cost is never compared against liters times price.
type FuelEntryValidator struct{}

// NewFuelEntryValidator returns a FuelEntryValidator as a [Validator].
func NewFuelEntryValidator() Validator {
	return &FuelEntryValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for any other type.
func (v *FuelEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FuelEntry:
		return v.validateFuelEntry(ctx, value, fields...)
	case *models.FuelEntry:
		return v.validateFuelEntry(ctx, *value, fields...)

	case models.FuelEntryData:
		return v.validateFuelEntryData(value, fields...)
	case *models.FuelEntryData:
		return v.validateFuelEntryData(*value, fields...)

	case models.CreateFuelEntryRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateFuelEntryRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.CreateFuelEntriesRequest:
		return v.validateBulkCreateRequest(value, fields...)
	case *models.CreateFuelEntriesRequest:
		return v.validateBulkCreateRequest(*value, fields...)

	case models.DeleteFuelEntriesRequest:
		return v.validateBulkDeleteRequest(value, fields...)
	case *models.DeleteFuelEntriesRequest:
		return v.validateBulkDeleteRequest(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FuelEntryValidator) validateFuelEntry(_ context.Context, entry models.FuelEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldUserID, FieldDateTime}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if entry.ID == "" {
				return ErrInvalidEntryID
			}
		case FieldUserID:
			if entry.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldDateTime:
			if entry.DateTime.IsZero() {
				return ErrMissingDateTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FuelEntryValidator) validateFuelEntryData(data models.FuelEntryData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateTime}
	}

	for _, f := range fields {
		switch f {
		case FieldDateTime:
			if data.DateTime.IsZero() {
				return ErrMissingDateTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FuelEntryValidator) validateCreateRequest(req models.CreateFuelEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDateTime}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldDateTime:
			if err := v.validateFuelEntryData(req.FuelEntryData, FieldDateTime); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBulkCreateRequest also checks every entry of the list so that a
// bad element fails the whole request before anything is written.
func (v *FuelEntryValidator) validateBulkCreateRequest(req models.CreateFuelEntriesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEntries}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldEntries:
			if len(req.Entries) == 0 {
				return ErrEmptyEntries
			}
			for _, data := range req.Entries {
				if err := v.validateFuelEntryData(data); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FuelEntryValidator) validateBulkDeleteRequest(req models.DeleteFuelEntriesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEntryIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldEntryIDs:
			if len(req.EntryIDs) == 0 {
				return ErrEmptyEntryIDs
			}
			for _, id := range req.EntryIDs {
				if id == "" {
					return ErrInvalidEntryID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FuelEntryValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if c.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
