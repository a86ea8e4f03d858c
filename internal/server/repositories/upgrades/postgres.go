// Package upgrades persists self-improvement commitments and their daily logs.
// No HTTP route reads or writes them yet.
package upgrades

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, upgrade *models.Upgrade) (*models.Upgrade, error) {
	if upgrade.DailyLogs == nil {
		upgrade.DailyLogs = []models.DailyLog{}
	}
	logs, err := json.Marshal(upgrade.DailyLogs)
	if err != nil {
		return nil, fmt.Errorf("marshal daily logs: %w", err)
	}

	query := `
		INSERT INTO upgrades (user_id, type, duration, meaning, start_date, daily_logs, active, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		upgrade.UserID, upgrade.Type, upgrade.Duration, upgrade.Meaning, upgrade.StartDate, logs,
		upgrade.Active, upgrade.Completed,
	).Scan(&upgrade.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return upgrade, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Upgrade, error) {
	query := `SELECT id, user_id, type, duration, meaning, start_date, daily_logs, active, completed
		FROM upgrades
		WHERE user_id = $1
		ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Upgrade{}
	for rows.Next() {
		var (
			u    models.Upgrade
			logs []byte
		)
		if err := rows.Scan(&u.ID, &u.UserID, &u.Type, &u.Duration, &u.Meaning, &u.StartDate, &logs, &u.Active, &u.Completed); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if err := json.Unmarshal(logs, &u.DailyLogs); err != nil {
			return nil, fmt.Errorf("unmarshal daily logs: %w", err)
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
