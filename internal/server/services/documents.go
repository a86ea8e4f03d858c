package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/logging"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/repomanager"
	"github.com/lifeos/lifeos/internal/server/storage"
)

// DownloadURLValidity is how long a presigned document link stays usable.
const DownloadURLValidity = 15 * time.Minute

// UploadInput is a single uploaded file with its form metadata.
// Tags is the raw comma-separated form value.
type UploadInput struct {
	Title       string
	Category    models.DocumentCategory
	Tags        string
	Notes       string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     storage.ObjectStorage
	logger      logging.Logger
	now         func() time.Time
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, st storage.ObjectStorage, logger logging.Logger) *DocumentService {
	return &DocumentService{db: db, repomanager: m, storage: st, logger: logger, now: utcNow}
}

// Upload stores the file, then the record. If the record cannot be saved
// the stored object is removed again.
func (s *DocumentService) Upload(ctx context.Context, userID string, in UploadInput) (*models.Document, error) {
	if in.Body == nil {
		return nil, common.WithMessage(common.ErrValidation, "No file uploaded")
	}
	if in.Category == "" {
		return nil, common.WithMessage(common.ErrValidation, "category is required")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = in.FileName
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.DocumentKey(userID, in.FileName, s.now())
	url, err := s.storage.Put(ctx, key, contentType, in.Body, in.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	doc := &models.Document{
		UserID:    userID,
		Title:     title,
		Category:  in.Category,
		FileURL:   url,
		FileType:  contentType,
		StorageID: key,
		Tags:      ParseTags(in.Tags),
		Notes:     strings.TrimSpace(in.Notes),
	}
	if strings.HasPrefix(contentType, "image/") {
		doc.Thumbnail = url
	}

	created, err := s.repomanager.Documents(s.db).Create(ctx, doc)
	if err != nil {
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.logger.Error(ctx, "orphaned stored object", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("save document: %w", err)
	}
	return created, nil
}

// List returns documents newest first, optionally within one category.
func (s *DocumentService) List(ctx context.Context, userID string, category models.DocumentCategory) ([]*models.Document, error) {
	return s.repomanager.Documents(s.db).List(ctx, userID, category)
}

// Delete removes the record and its stored object together. The record is
// deleted inside a transaction that only commits once the object is gone,
// so a storage failure leaves both in place.
func (s *DocumentService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		doc, err := s.repomanager.Documents(tx).Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := s.storage.Delete(ctx, doc.StorageID); err != nil {
			return fmt.Errorf("%w: %v", common.ErrStorage, err)
		}
		return nil
	})
}

// DownloadURL returns a short-lived signed link to the stored file.
func (s *DocumentService) DownloadURL(ctx context.Context, userID, id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}
	doc, err := s.repomanager.Documents(s.db).Get(ctx, userID, id)
	if err != nil {
		return "", err
	}
	url, err := s.storage.PresignGet(ctx, doc.StorageID, DownloadURLValidity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return url, nil
}

// ParseTags splits a comma-separated list into trimmed, distinct, non-empty
// tags, keeping first-seen order.
func ParseTags(raw string) []string {
	tags := []string{}
	seen := map[string]struct{}{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}
