package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/repomanager"
)

var errNoteContent = common.WithMessage(common.ErrValidation, "content is required")

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m, now: utcNow}
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).List(ctx, userID)
}

func (s *NoteService) Create(ctx context.Context, userID string, n *models.Note) (*models.Note, error) {
	n.Title = strings.TrimSpace(n.Title)
	if strings.TrimSpace(n.Content) == "" {
		return nil, errNoteContent
	}
	n.UserID = userID
	return s.repomanager.Notes(s.db).Create(ctx, n)
}

// Update applies patch and stamps updatedAt.
func (s *NoteService) Update(ctx context.Context, userID, id string, patch models.NotePatch) (*models.Note, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return nil, errNoteContent
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		patch.Title = &t
	}
	return s.repomanager.Notes(s.db).Update(ctx, userID, id, patch, s.now())
}

func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.repomanager.Notes(s.db).Delete(ctx, userID, id)
}
