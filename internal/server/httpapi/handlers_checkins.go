package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/services"
)

func (s *Server) listCheckIns(c *gin.Context) {
	date, _, err := queryDate(c, "date")
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	start, end, err := queryRange(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	q := services.CheckInQuery{Date: date, Start: start, End: end}
	list, err := s.svc.CheckIns.List(c.Request.Context(), userID(c), q)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createCheckIn(c *gin.Context) {
	var req checkInRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	checkIn := &models.CheckIn{
		Date:        req.Date.Time,
		Mood:        req.Mood,
		TaskFeeling: req.TaskFeeling,
		Note:        strings.TrimSpace(req.Note),
	}
	created, err := s.svc.CheckIns.Create(c.Request.Context(), userID(c), checkIn)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) weeklySummary(c *gin.Context) {
	summary, err := s.svc.CheckIns.WeeklySummary(c.Request.Context(), userID(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
