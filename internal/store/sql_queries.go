package store

import (
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable       = "users"
	fuelEntriesTable = "fuel_entries"
)

var (
	userColumns      = []string{"id", "email", "password_hash", "created_at"}
	fuelEntryColumns = []string{"id", "user_id", "data"}
)

// queries builds the statements of one dialect. Every builder returns the
// SQL text and its arguments or wraps the squirrel error in
// ErrBuildingSQLQuery.
type queries struct {
	sq.StatementBuilderType
}

func build(sqlizer sq.Sqlizer) (string, []any, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q queries) insertUser(user models.User) (string, []any, error) {
	return build(q.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt))
}

func (q queries) selectUserBy(column string, value string) (string, []any, error) {
	return build(q.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}))
}

func (q queries) selectUsers() (string, []any, error) {
	return build(q.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id"))
}

func (q queries) deleteUserEntries(userID string) (string, []any, error) {
	return build(q.Delete(fuelEntriesTable).Where(sq.Eq{"user_id": userID}))
}

func (q queries) deleteUser(userID string) (string, []any, error) {
	return build(q.Delete(usersTable).Where(sq.Eq{"id": userID}))
}

// insertFuelEntry is also used as the prepared statement of a bulk insert,
// so the placeholders must not depend on the record.
func (q queries) insertFuelEntry(record models.FuelEntryRecord) (string, []any, error) {
	return build(q.Insert(fuelEntriesTable).
		Columns(fuelEntryColumns...).
		Values(record.ID, record.UserID, string(record.Data)))
}

func (q queries) selectFuelEntry(userID, entryID string) (string, []any, error) {
	return build(q.Select(fuelEntryColumns...).
		From(fuelEntriesTable).
		Where(sq.Eq{"id": entryID, "user_id": userID}))
}

// selectFuelEntries selects the entries of userID, or of every user when
// userID is empty.
func (q queries) selectFuelEntries(userID string) (string, []any, error) {
	query := q.Select(fuelEntryColumns...).From(fuelEntriesTable)
	if userID != "" {
		query = query.Where(sq.Eq{"user_id": userID})
	}
	return build(query.OrderBy("id"))
}

func (q queries) selectFuelEntryIDs(userID string, entryIDs []string) (string, []any, error) {
	return build(q.Select("id").
		From(fuelEntriesTable).
		Where(sq.Eq{"user_id": userID, "id": entryIDs}))
}

func (q queries) updateFuelEntry(record models.FuelEntryRecord) (string, []any, error) {
	return build(q.Update(fuelEntriesTable).
		Set("data", string(record.Data)).
		Where(sq.Eq{"id": record.ID, "user_id": record.UserID}))
}

func (q queries) deleteFuelEntries(userID string, entryIDs ...string) (string, []any, error) {
	var idCondition any = entryIDs
	if len(entryIDs) == 1 {
		idCondition = entryIDs[0]
	}
	return build(q.Delete(fuelEntriesTable).
		Where(sq.Eq{"id": idCondition, "user_id": userID}))
}
