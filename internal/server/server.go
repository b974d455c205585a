// Package server provides the HTTP API for word-vector-sim.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/tsawler/word-vector-sim/internal/config"
	"github.com/tsawler/word-vector-sim/internal/suggest"
	"github.com/tsawler/word-vector-sim/internal/vector"
)

// Server is the HTTP server for the common-word API. The vector table is
// shared read-only across all requests; handlers never mutate it.
type Server struct {
	table     *vector.Table
	suggester *suggest.Suggester // nil when suggestions are disabled
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies. suggester may be
// nil to disable did-you-mean suggestions.
func NewServer(
	table *vector.Table,
	suggester *suggest.Suggester,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		table:     table,
		suggester: suggester,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/common-words", s.handleCommonWords)
	// Legacy route, kept for clients that predate the /api/v1 prefix.
	r.Post("/find_common_word", s.handleCommonWords)
	r.Get("/api/v1/vocabulary/{word}", s.handleVocabularyWord)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server",
		zap.String("addr", addr),
		zap.Int("words", s.table.Size()),
		zap.Int("dimension", s.table.Dim()),
	)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
