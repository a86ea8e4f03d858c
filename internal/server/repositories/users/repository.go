package users

import (
	"context"
	"time"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, pinHash string) (*models.User, error)
	Get(ctx context.Context) (*models.User, error)
	Exists(ctx context.Context) (bool, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
