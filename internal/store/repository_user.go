package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	queries queries
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		logger:  logger,
		queries: queries{db.builder},
	}
}

// CreateUser persists a new user record. The caller assigns the id and
// creation time.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insertUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		class := r.db.classify(err)
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", class).
			Msg("error inserting user")

		if class == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail returns the user registered with email or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.queries.selectUserBy("email", email)
	if err != nil {
		return models.User{}, err
	}

	return r.findUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID returns the user with userID or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := r.queries.selectUserBy("id", userID)
	if err != nil {
		return models.User{}, err
	}

	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns all users ordered by creation time.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectUsers()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// DeleteUser removes the user and its fuel entries in one transaction.
// The entries are deleted explicitly so the result does not depend on the
// backend enforcing ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	entriesQuery, entriesArgs, err := r.queries.deleteUserEntries(userID)
	if err != nil {
		return 0, err
	}
	userQuery, userArgs, err := r.queries.deleteUser(userID)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	entriesResult, err := tx.ExecContext(ctx, entriesQuery, entriesArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("failed to delete user entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	userResult, err := tx.ExecContext(ctx, userQuery, userArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("failed to delete user")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := userResult.RowsAffected(); err != nil || affected == 0 {
		return 0, ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	deletedEntries, _ := entriesResult.RowsAffected()

	log.Info().
		Str("func", "*userRepository.DeleteUser").
		Str("user_id", userID).
		Int64("deleted_entries", deletedEntries).
		Msg("user deleted")

	return int(deletedEntries), nil
}
