package documents

import (
	"context"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	List(ctx context.Context, userID string, category models.DocumentCategory) ([]*models.Document, error)
	Get(ctx context.Context, userID, id string) (*models.Document, error)
	// Delete removes the record and returns it. Inside a transaction the
	// row stays locked until commit or rollback.
	Delete(ctx context.Context, userID, id string) (*models.Document, error)
}
