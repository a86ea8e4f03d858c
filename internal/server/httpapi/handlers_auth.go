package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createPin(c *gin.Context) {
	var req pinRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	token, user, err := s.svc.Auth.CreatePin(c.Request.Context(), req.Pin)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "PIN created", "user_id", user.ID)
	c.JSON(http.StatusCreated, tokenResponse{Message: "PIN created successfully", Token: token})
}

func (s *Server) login(c *gin.Context) {
	var req pinRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	token, err := s.svc.Auth.Login(c.Request.Context(), req.Pin)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Message: "Login successful", Token: token})
}

func (s *Server) checkPin(c *gin.Context) {
	exists, err := s.svc.Auth.CheckPinExists(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pinExists": exists})
}
