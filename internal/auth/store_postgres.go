// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/internal/platform/database/schema"
	"github.com/rmedina/faunatlas/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the [UserRepository] interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the [UserRepository].
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the app_user table.

Description: Persists account metadata, initializing timestamps if not provided.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on a duplicate email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.User.Table,
		schema.User.ID, schema.User.Email, schema.User.PasswordHash,
		schema.User.DisplayName, schema.User.Role,
		schema.User.CreatedAt, schema.User.UpdatedAt,
	)

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Email is already registered")
	}
	if err != nil {
		return dberr.Wrap(err, "create user")
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.User.Table, schema.User.Email,
	)

	return repository.scanUser(repository.pool.QueryRow(context, query, email))
}

/*
FindByID retrieves a user record by its UUID primary key.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.User.Table, schema.User.ID,
	)

	return repository.scanUser(repository.pool.QueryRow(context, query, id))
}

/*
UpdateProfile applies a partial update to the mutable account fields.

Description: Builds a dynamic SET clause from the non-nil inputs. Nil inputs
leave the stored value untouched.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - displayName: *string (New display name, nil to skip)
  - passwordHash: *string (New bcrypt hash, nil to skip)

Returns:
  - error: apperr.NotFound if the account does not exist
*/
func (repository *PostgresUserRepository) UpdateProfile(context context.Context, userID string, displayName, passwordHash *string) error {
	var builder strings.Builder
	arguments := []any{}
	argID := 1

	builder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.User.Table, schema.User.UpdatedAt))

	if displayName != nil {
		builder.WriteString(fmt.Sprintf(", %s = $%d", schema.User.DisplayName, argID))
		arguments = append(arguments, *displayName)
		argID++
	}
	if passwordHash != nil {
		builder.WriteString(fmt.Sprintf(", %s = $%d", schema.User.PasswordHash, argID))
		arguments = append(arguments, *passwordHash)
		argID++
	}

	builder.WriteString(fmt.Sprintf(" WHERE %s = $%d", schema.User.ID, argID))
	arguments = append(arguments, userID)

	tag, err := repository.pool.Exec(context, builder.String(), arguments...)
	if err != nil {
		return dberr.Wrap(err, "update user profile")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// userColumns returns the ordered column list shared by the read queries.
func userColumns() string {
	return strings.Join([]string{
		schema.User.ID, schema.User.Email, schema.User.PasswordHash,
		schema.User.DisplayName, schema.User.Role,
		schema.User.CreatedAt, schema.User.UpdatedAt,
	}, ", ")
}

// scanUser hydrates a User entity from a single-row query result.
func (repository *PostgresUserRepository) scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("User")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "scan user")
	}

	return user, nil
}
