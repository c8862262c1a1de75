// Package server provides the local live-preview HTTP server: the rendered CV, action
// dispatch, change notifications and PDF export.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/store"
	"go.uber.org/zap"
)

// DefaultAddr binds the preview to the loopback interface only.
const DefaultAddr = "127.0.0.1:7070"

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	exporter   *export.Exporter
	logger     *zap.Logger
	hub        *hub
}

// Config holds server configuration
type Config struct {
	Addr string
}

// New creates a new server instance around an open store. exporter may be nil, in which
// case POST /export answers 503.
func New(cfg Config, st *store.Store, exporter *export.Exporter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	s := &Server{
		store:    st,
		exporter: exporter,
		logger:   logger,
		hub:      newHub(),
	}
	st.Listen(func(c store.Change) {
		s.hub.publish(ChangeEvent{Version: c.Version, Type: string(c.Type)})
	})

	s.httpServer = &http.Server{
		Addr:        cfg.Addr,
		Handler:     s.Handler(),
		ReadTimeout: 30 * time.Second,
		// Export can take a while; SSE streams clear their own deadline.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handlePreview)
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("GET /sections", s.handleSections)
	mux.HandleFunc("POST /actions", s.handleDispatch)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.HandleFunc("GET /events", s.handleEvents)
	return s.withLogging(mux)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down preview server")
	s.hub.close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("preview server stopped")
	return nil
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
