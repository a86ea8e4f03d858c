package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/logging"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentService(t *testing.T) (*DocumentService, *fakeRepoManager, *fakeStorage) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	st := newFakeStorage()
	svc := NewDocumentService(db, rm, st, logging.Nop{})
	svc.now = fixedClock(time.Date(2026, 4, 9, 10, 0, 0, 0, time.UTC))
	return svc, rm, st
}

func upload(title, fileName, contentType, body string) UploadInput {
	return UploadInput{
		Title:       title,
		Category:    models.DocumentCategoryFinance,
		Tags:        "car, 2026 ,car,,",
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestDocumentService_Upload(t *testing.T) {
	svc, rm, st := newTestDocumentService(t)

	doc, err := svc.Upload(context.Background(), testUser, upload("", "Policy.PDF", "application/pdf", "%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "Policy.PDF", doc.Title)
	assert.Equal(t, []string{"car", "2026"}, doc.Tags)
	assert.Equal(t, "application/pdf", doc.FileType)
	assert.Empty(t, doc.Thumbnail)
	assert.True(t, strings.HasPrefix(doc.StorageID, "documents/"+testUser+"/2026/04/"))
	assert.True(t, strings.HasSuffix(doc.StorageID, ".pdf"))
	assert.Equal(t, "http://files/"+doc.StorageID, doc.FileURL)
	assert.Equal(t, "%PDF", st.objects[doc.StorageID])
	assert.Contains(t, rm.documents.items, doc.ID)
}

func TestDocumentService_UploadImageThumbnail(t *testing.T) {
	svc, _, _ := newTestDocumentService(t)

	doc, err := svc.Upload(context.Background(), testUser, upload("Scan", "scan.png", "image/png", "png"))
	require.NoError(t, err)
	assert.Equal(t, "Scan", doc.Title)
	assert.Equal(t, doc.FileURL, doc.Thumbnail)
}

func TestDocumentService_UploadValidation(t *testing.T) {
	svc, _, st := newTestDocumentService(t)

	in := upload("x", "a.pdf", "application/pdf", "x")
	in.Body = nil
	_, err := svc.Upload(context.Background(), testUser, in)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "No file uploaded", common.PublicMessage(err))

	in = upload("x", "a.pdf", "application/pdf", "x")
	in.Category = ""
	_, err = svc.Upload(context.Background(), testUser, in)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "category is required", common.PublicMessage(err))

	assert.Empty(t, st.objects)
}

func TestDocumentService_UploadStorageFailure(t *testing.T) {
	svc, rm, st := newTestDocumentService(t)
	st.putErr = errors.New("bucket gone")

	_, err := svc.Upload(context.Background(), testUser, upload("x", "a.pdf", "application/pdf", "x"))
	require.ErrorIs(t, err, common.ErrStorage)
	assert.Empty(t, rm.documents.items)
}

func TestDocumentService_UploadCompensatesOnSaveFailure(t *testing.T) {
	svc, rm, st := newTestDocumentService(t)
	rm.documents.createErr = errors.New("insert failed")

	_, err := svc.Upload(context.Background(), testUser, upload("x", "a.pdf", "application/pdf", "x"))
	require.Error(t, err)
	assert.Empty(t, st.objects, "stored object should be removed again")
}

func TestDocumentService_ListByCategory(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDocumentService(t)

	_, err := svc.Upload(ctx, testUser, upload("a", "a.pdf", "application/pdf", "a"))
	require.NoError(t, err)
	in := upload("b", "b.pdf", "application/pdf", "b")
	in.Category = models.DocumentCategoryMedical
	_, err = svc.Upload(ctx, testUser, in)
	require.NoError(t, err)

	all, err := svc.List(ctx, testUser, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	medical, err := svc.List(ctx, testUser, models.DocumentCategoryMedical)
	require.NoError(t, err)
	require.Len(t, medical, 1)
	assert.Equal(t, "b", medical[0].Title)
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	st := newFakeStorage()
	svc := NewDocumentService(db, rm, st, logging.Nop{})

	doc, err := svc.Upload(ctx, testUser, upload("x", "a.pdf", "application/pdf", "x"))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, svc.Delete(ctx, testUser, doc.ID))
	assert.Empty(t, st.objects)
	assert.Empty(t, rm.documents.items)

	mock.ExpectBegin()
	mock.ExpectRollback()
	require.ErrorIs(t, svc.Delete(ctx, testUser, doc.ID), common.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, testUser, "nope"), common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentService_DeleteStorageFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	st := newFakeStorage()
	svc := NewDocumentService(db, rm, st, logging.Nop{})

	doc, err := svc.Upload(ctx, testUser, upload("x", "a.pdf", "application/pdf", "x"))
	require.NoError(t, err)

	st.deleteErr = errors.New("unreachable")
	mock.ExpectBegin()
	mock.ExpectRollback()
	err = svc.Delete(ctx, testUser, doc.ID)
	require.ErrorIs(t, err, common.ErrStorage)
	assert.Contains(t, st.objects, doc.StorageID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentService_DownloadURL(t *testing.T) {
	ctx := context.Background()
	svc, _, st := newTestDocumentService(t)

	doc, err := svc.Upload(ctx, testUser, upload("x", "a.pdf", "application/pdf", "x"))
	require.NoError(t, err)

	url, err := svc.DownloadURL(ctx, testUser, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://signed/"+doc.StorageID, url)
	assert.Equal(t, DownloadURLValidity, st.presigned)

	_, err = svc.DownloadURL(ctx, "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a", doc.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"tax", []string{"tax"}},
		{"tax, 2026 , tax,home", []string{"tax", "2026", "home"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTags(tt.in), "input %q", tt.in)
	}
}
