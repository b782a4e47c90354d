package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no user.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUnknownUser is returned when a fuel entry references a user that does
	// not exist (foreign key violation).
	ErrUnknownUser = errors.New("fuel entry references unknown user")

	// ErrFuelEntryAlreadyExists is returned when an entry id is already taken.
	ErrFuelEntryAlreadyExists = errors.New("fuel entry already exists")

	// ErrFuelEntryNotFound is returned when a query, update or delete targets a
	// fuel entry (identified by id and user_id) that does not exist.
	ErrFuelEntryNotFound = errors.New("fuel entry was not found")

	// ErrFuelEntriesNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrFuelEntriesNotSaved = errors.New("fuel entries were not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
