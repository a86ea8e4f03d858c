package httpapi

import (
	"context"

	"github.com/lifeos/lifeos/internal/server/auth"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/services"
)

type authSvc interface {
	CreatePin(ctx context.Context, pin string) (string, *models.User, error)
	Login(ctx context.Context, pin string) (string, error)
	CheckPinExists(ctx context.Context) (bool, error)
	Authenticate(token string) (auth.Identity, error)
}

type taskSvc interface {
	List(ctx context.Context, userID string, q services.TaskQuery) ([]*models.Task, error)
	Create(ctx context.Context, userID string, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error)
	Toggle(ctx context.Context, userID, id string) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type expenseSvc interface {
	List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]*models.Expense, error)
	Create(ctx context.Context, userID string, e *models.Expense) (*models.Expense, error)
	MonthlySummary(ctx context.Context, userID string, year, month int) (*models.MonthlySummary, error)
	Delete(ctx context.Context, userID, id string) error
}

type checkInSvc interface {
	List(ctx context.Context, userID string, q services.CheckInQuery) ([]*models.CheckIn, error)
	Create(ctx context.Context, userID string, c *models.CheckIn) (*models.CheckIn, error)
	WeeklySummary(ctx context.Context, userID string) (*models.WeeklySummary, error)
}

type documentSvc interface {
	Upload(ctx context.Context, userID string, in services.UploadInput) (*models.Document, error)
	List(ctx context.Context, userID string, category models.DocumentCategory) ([]*models.Document, error)
	Delete(ctx context.Context, userID, id string) error
	DownloadURL(ctx context.Context, userID, id string) (string, error)
}

type noteSvc interface {
	List(ctx context.Context, userID string) ([]*models.Note, error)
	Create(ctx context.Context, userID string, n *models.Note) (*models.Note, error)
	Update(ctx context.Context, userID, id string, patch models.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

// Services bundles the business services the router dispatches to.
type Services struct {
	Auth      authSvc
	Tasks     taskSvc
	Expenses  expenseSvc
	CheckIns  checkInSvc
	Documents documentSvc
	Notes     noteSvc
}
