package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wellnest/wellnest/internal/storage"
	"github.com/wellnest/wellnest/internal/streak"
	"github.com/wellnest/wellnest/internal/videos"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("WellNest backend is running successfully!"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		s.respondError(w, http.StatusBadRequest, "Message required")
		return
	}
	s.logger.Debug("chatbot request", zap.String("message", req.Message))
	reply := s.engine.Reply(req.Message)
	s.respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

type predictRequest struct {
	Text string `json:"text"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if s.classifier == nil {
		s.respondError(w, http.StatusServiceUnavailable, "Model not loaded")
		return
	}
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "Text is required")
		return
	}
	emotion := s.classifier.Predict(req.Text)
	s.respondJSON(w, http.StatusOK, map[string]string{"emotion": emotion})
}

type voiceTextRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleVoiceText(w http.ResponseWriter, r *http.Request) {
	var req voiceTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "No text received",
		})
		return
	}
	s.logger.Info("voice text received", zap.Int("length", len(req.Text)))
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Text received by backend",
	})
}

type createUserRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		s.respondError(w, http.StatusBadRequest, "Name required")
		return
	}
	user, err := s.store.CreateUser(r.Context(), req.Name)
	if err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, user)
}

func (s *Server) handleVisit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("get user failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	state, badges := streak.UpdateVisit(user.Streak, user.Badges, s.now())
	if err := s.store.UpdateStreak(r.Context(), userID, state, badges); err != nil {
		s.logger.Error("update streak failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"streak": state,
		"badges": badges,
	})
}

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   videos.All(),
	})
}

func (s *Server) handleVideosByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"data":     videos.ByCategory(category),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
