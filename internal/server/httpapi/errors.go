package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/common"
)

// Stable error codes returned to clients.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeNotFound     = "NOT_FOUND"
	CodeStorage      = "STORAGE_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

var errBadRequestBody = common.WithMessage(common.ErrValidation, "invalid request body")

// classify maps an error onto its status, code and default message.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, CodeTokenExpired, "Token expired"
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, CodeUnauthorized, "Invalid token"
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized, "Unauthorized"
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, CodeValidation, "Invalid request"
	case errors.Is(err, common.ErrConflict):
		return http.StatusBadRequest, CodeConflict, "Conflict"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, "Not found"
	case errors.Is(err, common.ErrStorage):
		return http.StatusBadGateway, CodeStorage, "File storage is unavailable"
	default:
		return http.StatusInternalServerError, CodeInternal, "Internal server error"
	}
}

// abortWithError writes the error body and stops the handler chain.
// Only messages attached with common.WithMessage reach the client.
func (s *Server) abortWithError(c *gin.Context, err error) {
	status, code, msg := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed",
			"error", err.Error(), "route", c.FullPath(), "request_id", c.GetString(ctxRequestID))
	} else if m := common.PublicMessage(err); m != "" {
		msg = m
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: apiError{Code: code, Message: msg}})
}

// notFoundAs names the missing entity unless err already carries a message.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, common.ErrNotFound) && common.PublicMessage(err) == "" {
		return common.WithMessage(err, msg)
	}
	return err
}
