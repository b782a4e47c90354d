package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidEntryID  = errors.New("invalid fuel entry ID")
	ErrMissingDateTime = errors.New("date_time is required")
	ErrEmptyEntries    = errors.New("at least one fuel entry must be provided")
	ErrEmptyEntryIDs   = errors.New("at least one entry ID must be provided")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyPassword   = errors.New("password is required")
)
