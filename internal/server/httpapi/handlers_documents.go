package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/services"
)

const documentNotFound = "Document not found"

var (
	errNoFile      = common.WithMessage(common.ErrValidation, "No file uploaded")
	errFileTooBig  = common.WithMessage(common.ErrValidation, "File exceeds the maximum upload size")
	errBadCategory = common.WithMessage(common.ErrValidation, "invalid document category")
)

func (s *Server) listDocuments(c *gin.Context) {
	list, err := s.svc.Documents.List(c.Request.Context(), userID(c), models.DocumentCategory(c.Query("category")))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// uploadDocument accepts multipart/form-data with a single "file" part and
// the title, category, tags and notes fields.
func (s *Server) uploadDocument(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadSize)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.abortWithError(c, errFileTooBig)
			return
		}
		s.abortWithError(c, errNoFile)
		return
	}

	var form uploadForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		s.abortWithError(c, errBadCategory)
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	defer f.Close()

	doc, err := s.svc.Documents.Upload(c.Request.Context(), userID(c), services.UploadInput{
		Title:       form.Title,
		Category:    form.Category,
		Tags:        form.Tags,
		Notes:       form.Notes,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	s.metrics.uploaded.Add(float64(fh.Size))
	c.JSON(http.StatusCreated, doc)
}

func (s *Server) downloadDocument(c *gin.Context) {
	url, err := s.svc.Documents.DownloadURL(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, notFoundAs(err, documentNotFound))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) deleteDocument(c *gin.Context) {
	if err := s.svc.Documents.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.abortWithError(c, notFoundAs(err, documentNotFound))
		return
	}
	deleted(c, "Document")
}
