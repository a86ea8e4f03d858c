// Package expenses provides PostgreSQL-backed persistence and aggregation
// for expense records.
package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	var receiptURL, receiptID string
	if expense.ReceiptImage != nil {
		receiptURL, receiptID = expense.ReceiptImage.URL, expense.ReceiptImage.StorageID
	}

	query := `
		INSERT INTO expenses (user_id, amount, category, subcategory, payment_mode, description, date,
			receipt_url, receipt_storage_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		expense.UserID, expense.Amount, expense.Category, expense.Subcategory, expense.PaymentMode,
		expense.Description, expense.Date, receiptURL, receiptID,
	).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return expense, nil
}

// List returns the user's expenses, newest first, optionally bounded by date.
func (r *PostgresRepository) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]*models.Expense, error) {
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

	query := `SELECT id, user_id, amount, category, subcategory, payment_mode, description, date,
		receipt_url, receipt_storage_id, created_at
		FROM expenses
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Expense{}
	for rows.Next() {
		var (
			e                     models.Expense
			receiptURL, receiptID string
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Subcategory, &e.PaymentMode, &e.Description,
			&e.Date, &receiptURL, &receiptID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if receiptURL != "" || receiptID != "" {
			e.ReceiptImage = &models.Receipt{URL: receiptURL, StorageID: receiptID}
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// SumByCategory totals expenses with from <= date < to, grouped by category.
func (r *PostgresRepository) SumByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]models.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount), COUNT(*)
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		GROUP BY category
	`
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := map[string]models.CategoryTotal{}
	for rows.Next() {
		var (
			category string
			total    decimal.Decimal
			count    int
		)
		if err := rows.Scan(&category, &total, &count); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result[category] = models.CategoryTotal{Total: total, Count: count}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
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
