// Package server provides the HTTP API for the canonicalization service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/studyowl/canon/internal/cache"
	"github.com/studyowl/canon/internal/config"
	"github.com/studyowl/canon/internal/pipeline"
	"go.uber.org/zap"
)

// Server is the HTTP server for the canond API.
type Server struct {
	mu     sync.RWMutex
	pipe   *pipeline.Pipeline
	store  cache.Store
	config *config.ServerConfig
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	pipe *pipeline.Pipeline,
	store cache.Store,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		pipe:   pipe,
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// SetPipeline swaps the pipeline. Used by config hot-reload; in-flight
// requests keep the pipeline they started with.
func (s *Server) SetPipeline(pipe *pipeline.Pipeline) {
	s.mu.Lock()
	s.pipe = pipe
	s.mu.Unlock()
}

func (s *Server) pipeline() *pipeline.Pipeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipe
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/canonicalize", s.handleCanonicalize)
	r.Post("/api/v1/fingerprint", s.handleFingerprint)
	r.Get("/api/v1/answers/{key}", s.handleGetAnswer)
	r.Put("/api/v1/answers/{key}", s.handlePutAnswer)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
