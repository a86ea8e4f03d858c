// Package tasks provides PostgreSQL-backed persistence for dated to-do items.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, user_id, title, description, date, priority, category,
	completed, completed_at, recurring_enabled, recurring_frequency, created_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	var t models.Task
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Date, &t.Priority, &t.Category,
		&t.Completed, &t.CompletedAt, &t.Recurring.Enabled, &t.Recurring.Frequency, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts task and fills in the generated id and created_at.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, date, priority, priority_rank, category,
			completed, completed_at, recurring_enabled, recurring_frequency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.Date, task.Priority, task.Priority.Rank(), task.Category,
		task.Completed, task.CompletedAt, task.Recurring.Enabled, task.Recurring.Frequency,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// List returns the user's tasks ordered by date, then High before Medium before Low.
func (r *PostgresRepository) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
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
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		where = append(where, fmt.Sprintf("completed = $%d", len(args)))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY date ASC, priority_rank DESC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetForUpdate loads a task owned by userID and locks its row until the
// surrounding transaction ends. Tasks of other users are reported as missing.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// Update writes every mutable column of task.
func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET title = $3, description = $4, date = $5, priority = $6, priority_rank = $7,
			category = $8, completed = $9, completed_at = $10, recurring_enabled = $11, recurring_frequency = $12
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Date, task.Priority, task.Priority.Rank(),
		task.Category, task.Completed, task.CompletedAt, task.Recurring.Enabled, task.Recurring.Frequency,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
