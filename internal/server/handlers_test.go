package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/wellnest/wellnest/internal/chat"
	"github.com/wellnest/wellnest/internal/config"
	"github.com/wellnest/wellnest/internal/corpus"
	"github.com/wellnest/wellnest/internal/storage"
)

func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	dir := t.TempDir()

	faqPath := filepath.Join(dir, "faq.csv")
	faq := "questions,answers\nWhat is anxiety?,Anxiety is a persistent feeling of worry.\n"
	if err := os.WriteFile(faqPath, []byte(faq), 0600); err != nil {
		t.Fatal(err)
	}
	idx, err := corpus.Build(corpus.Descriptor{
		Name: "faq", Path: faqPath,
		PromptColumn: "questions", AnswerColumn: "answers",
		Template: "%s", Weight: 2.0,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	engine := chat.NewEngine([]*corpus.Index{idx}, zap.NewNop())

	store, err := storage.NewSQLiteStore(filepath.Join(dir, "users.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })

	srv := NewServer(engine, nil, store, &config.ServerConfig{Host: "localhost", Port: 5000}, zap.NewNop())
	return srv, srv.Router()
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestHandleHome(t *testing.T) {
	_, router := testServer(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != "WellNest backend is running successfully!" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestHandleChatbot_rule(t *testing.T) {
	_, router := testServer(t)
	w := postJSON(t, router, "/api/chatbot", map[string]string{"message": "I feel stressed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["reply"] != "Feeling stressed is common 🌿 Try deep breathing or short walks." {
		t.Errorf("reply = %v", body["reply"])
	}
}

func TestHandleChatbot_retrieval(t *testing.T) {
	_, router := testServer(t)
	w := postJSON(t, router, "/api/chatbot", map[string]string{"message": "What is anxiety?"})
	body := decodeBody(t, w)
	if body["reply"] != "Anxiety is a persistent feeling of worry." {
		t.Errorf("reply = %v", body["reply"])
	}
}

func TestHandleChatbot_missingMessage(t *testing.T) {
	_, router := testServer(t)
	w := postJSON(t, router, "/api/chatbot", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandlePredict_modelNotLoaded(t *testing.T) {
	_, router := testServer(t)
	w := postJSON(t, router, "/predict", map[string]string{"text": "I am happy"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Model not loaded" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestHandleVoiceText(t *testing.T) {
	_, router := testServer(t)

	w := postJSON(t, router, "/voice-text", map[string]string{"text": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "success" {
		t.Errorf("status field = %v", body["status"])
	}

	w = postJSON(t, router, "/voice-text", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleVisit(t *testing.T) {
	srv, router := testServer(t)
	srv.now = func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC) }

	w := postJSON(t, router, "/api/users", map[string]string{"name": "asha"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create user status = %d: %s", w.Code, w.Body.String())
	}
	userID, _ := decodeBody(t, w)["id"].(string)
	if userID == "" {
		t.Fatal("missing user id")
	}

	w = postJSON(t, router, "/api/visit/"+userID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("visit status = %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	streakObj, ok := body["streak"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing streak object: %v", body)
	}
	if streakObj["current"] != float64(1) {
		t.Errorf("current = %v, want 1", streakObj["current"])
	}
}

func TestHandleVisit_unknownUser(t *testing.T) {
	_, router := testServer(t)
	w := postJSON(t, router, "/api/visit/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandleVideos(t *testing.T) {
	_, router := testServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	data, ok := body["data"].([]interface{})
	if !ok || len(data) == 0 {
		t.Errorf("expected video list, got %v", body["data"])
	}

	r = httptest.NewRequest(http.MethodGet, "/api/videos/yoga", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	body = decodeBody(t, w)
	if body["category"] != "yoga" {
		t.Errorf("category = %v", body["category"])
	}
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 1 {
		t.Errorf("expected 1 yoga video, got %v", body["data"])
	}
}

func TestHandleHealth(t *testing.T) {
	_, router := testServer(t)
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}
