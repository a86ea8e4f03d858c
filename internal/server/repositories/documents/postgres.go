// Package documents persists metadata for files kept in object storage.
package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const documentColumns = `id, user_id, title, category, file_url, file_type, storage_id, thumbnail, tags, notes, upload_date`

func scanDocument(row interface{ Scan(...any) error }) (*models.Document, error) {
	var d models.Document
	if err := row.Scan(
		&d.ID, &d.UserID, &d.Title, &d.Category, &d.FileURL, &d.FileType, &d.StorageID,
		&d.Thumbnail, dbx.ArrayScanner(&d.Tags), &d.Notes, &d.UploadDate,
	); err != nil {
		return nil, err
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return &d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	query := `
		INSERT INTO documents (user_id, title, category, file_url, file_type, storage_id, thumbnail, tags, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, upload_date
	`
	err := r.db.QueryRowContext(ctx, query,
		doc.UserID, doc.Title, doc.Category, doc.FileURL, doc.FileType, doc.StorageID, doc.Thumbnail, doc.Tags, doc.Notes,
	).Scan(&doc.ID, &doc.UploadDate)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

// List returns documents newest first. An empty category lists all of them.
func (r *PostgresRepository) List(ctx context.Context, userID string, category models.DocumentCategory) ([]*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE user_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY upload_date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, category)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND user_id = $2`
	return r.one(ctx, query, id, userID)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (*models.Document, error) {
	query := `DELETE FROM documents WHERE id = $1 AND user_id = $2 RETURNING ` + documentColumns
	return r.one(ctx, query, id, userID)
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Document, error) {
	d, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}
