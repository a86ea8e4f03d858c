package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/server/models"
)

const noteNotFound = "Note not found"

func (s *Server) listNotes(c *gin.Context) {
	list, err := s.svc.Notes.List(c.Request.Context(), userID(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createNote(c *gin.Context) {
	var req noteRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	n, err := s.svc.Notes.Create(c.Request.Context(), userID(c), &models.Note{Title: req.Title, Content: req.Content})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) updateNote(c *gin.Context) {
	var req notePatchRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	patch := models.NotePatch{Title: req.Title, Content: req.Content}
	n, err := s.svc.Notes.Update(c.Request.Context(), userID(c), c.Param("id"), patch)
	if err != nil {
		s.abortWithError(c, notFoundAs(err, noteNotFound))
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) deleteNote(c *gin.Context) {
	if err := s.svc.Notes.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.abortWithError(c, notFoundAs(err, noteNotFound))
		return
	}
	deleted(c, "Note")
}
