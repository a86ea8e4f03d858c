package upgrades

import (
	"context"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, upgrade *models.Upgrade) (*models.Upgrade, error)
	List(ctx context.Context, userID string) ([]*models.Upgrade, error)
}
