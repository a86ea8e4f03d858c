package checkins

import (
	"context"
	"time"

	"github.com/lifeos/lifeos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, checkIn *models.CheckIn) (*models.CheckIn, error)
	ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
	List(ctx context.Context, userID string, filter models.CheckInFilter) ([]*models.CheckIn, error)
}
