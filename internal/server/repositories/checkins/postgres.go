// Package checkins stores daily mood check-ins. The (user_id, day) unique
// index guarantees one check-in per user per UTC calendar day.
package checkins

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/datex"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
)

const oneADayConstraint = "checkins_user_day_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts checkIn. A second check-in for the same day yields
// common.ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, checkIn *models.CheckIn) (*models.CheckIn, error) {
	query := `
		INSERT INTO checkins (user_id, date, day, mood, task_feeling, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		checkIn.UserID, checkIn.Date, datex.StartOfDay(checkIn.Date), checkIn.Mood, checkIn.TaskFeeling, checkIn.Note,
	).Scan(&checkIn.ID, &checkIn.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) && dbx.ConstraintName(err) == oneADayConstraint {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return checkIn, nil
}

func (r *PostgresRepository) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM checkins WHERE user_id = $1 AND day = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, datex.StartOfDay(day)).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// List returns check-ins newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, filter models.CheckInFilter) ([]*models.CheckIn, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT id, user_id, date, mood, task_feeling, note, created_at
		FROM checkins
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.CheckIn{}
	for rows.Next() {
		var c models.CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &c.Mood, &c.TaskFeeling, &c.Note, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
