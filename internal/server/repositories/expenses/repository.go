package expenses

import (
	"context"
	"time"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]*models.Expense, error)
	SumByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]models.CategoryTotal, error)
	Delete(ctx context.Context, userID, id string) error
}
