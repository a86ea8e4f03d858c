package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/server/services"
)

const taskNotFound = "Task not found"

func (s *Server) listTasks(c *gin.Context) {
	date, _, err := queryDate(c, "date")
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	list, err := s.svc.Tasks.List(c.Request.Context(), userID(c), services.TaskQuery{Date: date, Status: c.Query("status")})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createTask(c *gin.Context) {
	var req taskRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	task, err := s.svc.Tasks.Create(c.Request.Context(), userID(c), req.model())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c *gin.Context) {
	var req taskPatchRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	task, err := s.svc.Tasks.Update(c.Request.Context(), userID(c), c.Param("id"), req.patch())
	if err != nil {
		s.abortWithError(c, notFoundAs(err, taskNotFound))
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) toggleTask(c *gin.Context) {
	task, err := s.svc.Tasks.Toggle(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, notFoundAs(err, taskNotFound))
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.svc.Tasks.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.abortWithError(c, notFoundAs(err, taskNotFound))
		return
	}
	deleted(c, "Task")
}
