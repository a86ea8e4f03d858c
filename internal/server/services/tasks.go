package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/datex"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/repomanager"
)

// TaskQuery selects tasks for a listing. Date limits the result to that
// calendar day. A non-empty Status filters on completion: "completed" means
// done and any other value means open.
type TaskQuery struct {
	Date   *time.Time
	Status string
}

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: utcNow}
}

func (s *TaskService) List(ctx context.Context, userID string, q TaskQuery) ([]*models.Task, error) {
	var filter models.TaskFilter
	if q.Date != nil {
		from, to := datex.DayRange(*q.Date)
		filter.From, filter.To = &from, &to
	}
	if q.Status != "" {
		completed := q.Status == "completed"
		filter.Completed = &completed
	}
	return s.repomanager.Tasks(s.db).List(ctx, userID, filter)
}

// Create stores a new task for userID, applying the Medium/Personal defaults.
func (s *TaskService) Create(ctx context.Context, userID string, task *models.Task) (*models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	task.Description = strings.TrimSpace(task.Description)
	if task.Title == "" {
		return nil, common.WithMessage(common.ErrValidation, "title is required")
	}
	if task.Date.IsZero() {
		return nil, common.WithMessage(common.ErrValidation, "date is required")
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = models.TaskCategoryPersonal
	}

	task.UserID = userID
	task.SetCompleted(task.Completed, s.now())

	return s.repomanager.Tasks(s.db).Create(ctx, task)
}

// Update merges patch into the task under a row lock.
func (s *TaskService) Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.WithMessage(common.ErrValidation, "title is required")
	}
	return s.modify(ctx, userID, id, func(t *models.Task) { patch.Apply(t, s.now()) })
}

// Toggle flips the task's completion state.
func (s *TaskService) Toggle(ctx context.Context, userID, id string) (*models.Task, error) {
	return s.modify(ctx, userID, id, func(t *models.Task) { t.SetCompleted(!t.Completed, s.now()) })
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.repomanager.Tasks(s.db).Delete(ctx, userID, id)
}

func (s *TaskService) modify(ctx context.Context, userID, id string, change func(*models.Task)) (*models.Task, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var task *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		t, err := repo.GetForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		change(t)
		if err := repo.Update(ctx, t); err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}
