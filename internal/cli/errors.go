package cli

import "errors"

var (
	ErrNotSignedIn      = errors.New("not signed in, run `fuelctl signin` first")
	ErrAdminRequired    = errors.New("admin session required, run `fuelctl admin signin` first")
	ErrUserRequired     = errors.New("user session required, an admin session cannot manage entries")
	ErrInvalidDateTime  = errors.New("invalid date, use RFC 3339 or YYYY-MM-DD[ HH:MM]")
	ErrMissingFlag      = errors.New("missing required flag")
	ErrEmptyImportFile  = errors.New("import file contains no entries")
	ErrInvalidImportDoc = errors.New("import file must hold a JSON array of entries or an object with an \"entries\" array")
)
