package notes

import (
	"context"
	"time"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	List(ctx context.Context, userID string) ([]*models.Note, error)
	Update(ctx context.Context, userID, id string, patch models.NotePatch, at time.Time) (*models.Note, error)
	Delete(ctx context.Context, userID, id string) error
}
