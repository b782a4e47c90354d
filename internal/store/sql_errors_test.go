package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"unique", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), ForeignKeyViolation},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"syntax", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"plain error", errors.New("x"), NonRetryable},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, UniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, UniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ForeignKeyViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "foreign_key_violation", ForeignKeyViolation.String())
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}

func TestDialectFromDSN(t *testing.T) {
	assert.Equal(t, DialectPostgres, dialectFromDSN("postgres://u:p@localhost/db"))
	assert.Equal(t, DialectPostgres, dialectFromDSN("postgresql://localhost/db"))
	assert.Equal(t, DialectSQLite, dialectFromDSN("fuel_cost.db"))
	assert.Equal(t, Dialect(""), dialectFromDSN(""))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:data/fuel.db?"+sqliteParams, sqliteDSN("data/fuel.db"))
	assert.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
}
