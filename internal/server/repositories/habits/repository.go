package habits

import (
	"context"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, habit *models.Habit) (*models.Habit, error)
	List(ctx context.Context, userID string) ([]*models.Habit, error)
}
