// Package httpapi is the REST surface of the Life OS server: a gin router
// with request id, recovery, logging, metrics, CORS and bearer-token
// middleware in front of the business services.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/logging"
	"github.com/lifeos/lifeos/internal/server/config"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address       string
	corsOrigins   []string
	maxUploadSize int64
	svc           Services
	logger        logging.Logger
	metrics       *metrics
	engine        *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, svc Services) *Server {
	s := &Server{
		address:       cfg.EndpointAddrHTTP,
		corsOrigins:   cfg.CORSOrigins,
		maxUploadSize: cfg.MaxUploadSize,
		svc:           svc,
		logger:        l.With("module", "http_server"),
		metrics:       newMetrics(),
	}
	s.engine = s.routes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
