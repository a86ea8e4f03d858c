// Package habits persists habit streaks. No HTTP route reads or writes them yet.
package habits

import (
	"context"
	"fmt"
	"time"

	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	if habit.CompletedDates == nil {
		habit.CompletedDates = []time.Time{}
	}
	query := `
		INSERT INTO habits (user_id, name, description, streak, longest_streak, completed_dates, last_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		habit.UserID, habit.Name, habit.Description, habit.Streak, habit.LongestStreak,
		habit.CompletedDates, habit.LastCompleted,
	).Scan(&habit.ID, &habit.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return habit, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Habit, error) {
	query := `SELECT id, user_id, name, description, streak, longest_streak, completed_dates, last_completed, created_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Habit{}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Name, &h.Description, &h.Streak, &h.LongestStreak,
			dbx.ArrayScanner(&h.CompletedDates), &h.LastCompleted, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if h.CompletedDates == nil {
			h.CompletedDates = []time.Time{}
		}
		result = append(result, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
