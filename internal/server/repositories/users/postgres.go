// Package users persists the single account that owns every record.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
)

// singletonConstraint allows at most one row in users.
const singletonConstraint = "users_singleton_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user row. The singleton constraint turns a second
// insert into common.ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, pinHash string) (*models.User, error) {

	query :=
		`INSERT INTO users (pin_hash)
		 VALUES ($1)
		 RETURNING id, created_at
		 `

	user := &models.User{PinHash: pinHash}
	err := r.db.QueryRowContext(ctx, query, pinHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) && dbx.ConstraintName(err) == singletonConstraint {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.User, error) {
	query :=
		`SELECT id, pin_hash, created_at, last_login FROM users
		 ORDER BY created_at
		 LIMIT 1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query).Scan(&user.ID, &user.PinHash, &user.CreatedAt, &user.LastLogin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Exists(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	query :=
		`UPDATE users SET last_login = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
