package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/config"
	"github.com/Veraticus/signal-companion/internal/engine"
)

const shutdownTimeout = 30 * time.Second

// NewRouter builds the full HTTP handler: routes, request ids and CORS.
func NewRouter(calc engine.Calculator, cfg config.ServerConfig, interval time.Duration) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not found", "")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	NewHandler(calc, interval, cfg.CORSOrigins).RegisterRoutes(router)

	return withCORS(cfg.CORSOrigins)(withRequestID(router))
}

// Server is the JSON API server.
type Server struct {
	srv *http.Server
}

// NewServer creates a server listening on cfg.Addr().
func NewServer(calc engine.Calculator, cfg config.ServerConfig, interval time.Duration) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      NewRouter(calc, cfg, interval),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		common.LogInfo("API server starting", common.Fields{"addr": s.srv.Addr})
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	common.LogInfo("shutting down API server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
