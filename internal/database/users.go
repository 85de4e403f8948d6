package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
)

const (
	InsertUserQuery = `
		INSERT INTO
			users (id, login, name, phone, email, hash)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	SelectUserQuery = `
		SELECT
			id,
			login,
			name,
			phone,
			email,
			hash
		FROM
			users
		WHERE
			login = $1
	`
)

// CreateUser inserts a new account. A login collision maps to
// storage.ErrDuplicateUser so callers stay backend-agnostic.
func (d *Database) CreateUser(ctx context.Context, user models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if _, err := d.db.Exec(ctx, InsertUserQuery, user.ID, user.Login, user.Name, user.Phone, user.Email, user.Hash); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return storage.ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUser returns (nil, nil) when the login is unknown.
func (d *Database) FindUser(ctx context.Context, login string) (*models.User, error) {
	user := &models.User{}

	if err := d.db.QueryRow(ctx, SelectUserQuery, login).
		Scan(&user.ID, &user.Login, &user.Name, &user.Phone, &user.Email, &user.Hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
