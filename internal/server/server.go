// Package server provides the HTTP API for the WellNest backend.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/wellnest/wellnest/internal/chat"
	"github.com/wellnest/wellnest/internal/classify"
	"github.com/wellnest/wellnest/internal/config"
	"github.com/wellnest/wellnest/internal/storage"
)

// Server is the HTTP server for the WellNest API.
type Server struct {
	engine     *chat.Engine
	classifier *classify.Classifier // nil when the model is not loaded
	store      storage.Store
	config     *config.ServerConfig
	logger     *zap.Logger
	server     *http.Server
	now        func() time.Time
}

// NewServer creates a server with the given dependencies. classifier may be
// nil; the predict endpoint then reports the model as unavailable.
func NewServer(
	engine *chat.Engine,
	classifier *classify.Classifier,
	store storage.Store,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:     engine,
		classifier: classifier,
		store:      store,
		config:     cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)
	r.Post("/api/chatbot", s.handleChatbot)
	r.Post("/predict", s.handlePredict)
	r.Post("/voice-text", s.handleVoiceText)
	r.Post("/api/users", s.handleCreateUser)
	r.Post("/api/visit/{userID}", s.handleVisit)
	r.Get("/api/videos", s.handleVideos)
	r.Get("/api/videos/{category}", s.handleVideosByCategory)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server",
		zap.String("addr", addr),
		zap.Strings("corpora", s.engine.ActiveCorpora()),
		zap.Bool("classifier_loaded", s.classifier != nil),
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
