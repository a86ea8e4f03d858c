package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/auth"
)

const (
	ctxRequestID = "requestID"
	ctxUserID    = "userID"
)

var (
	errMissingToken = common.WithMessage(common.ErrUnauthorized, "Authorization token required")
	errPanic        = common.WithMessage(common.ErrInternal, "Internal server error")
)

// requestID makes sure every request carries an X-Request-ID and echoes it
// back on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(common.RequestIDHeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Writer.Header().Set(common.RequestIDHeaderName, rid)
		c.Next()
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error(c.Request.Context(), "panic recovered",
			"panic", recovered, "route", c.FullPath(), "request_id", c.GetString(ctxRequestID))
		s.abortWithError(c, errPanic)
	})
}

// requestLogger writes one line per finished request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		args := []any{
			"method", c.Request.Method,
			"route", route,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"request_id", c.GetString(ctxRequestID),
		}
		if uid := c.GetString(ctxUserID); uid != "" {
			args = append(args, "user_id", uid)
		}
		s.logger.Info(c.Request.Context(), "request served", args...)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", common.AuthorizationHeaderName, common.RequestIDHeaderName},
		ExposeHeaders:    []string{common.RequestIDHeaderName},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// authenticate verifies the bearer token and attaches the caller's Identity
// to the request context.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if !ok {
			s.abortWithError(c, errMissingToken)
			return
		}

		id, err := s.svc.Auth.Authenticate(token)
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Set(ctxUserID, id.UserID())
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// userID returns the authenticated caller. Only valid behind authenticate.
func userID(c *gin.Context) string {
	id, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		return ""
	}
	return id.UserID()
}
