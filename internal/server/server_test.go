package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptforge/promptforge/internal/home"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create home: %v", err)
	}
	s, err := New(Config{
		Host:   "localhost",
		Port:   "0",
		Home:   h,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

func TestNew_Defaults(t *testing.T) {
	s := newTestServer(t)

	if s.Addr() != "localhost:0" {
		t.Errorf("unexpected addr: %s", s.Addr())
	}
	if s.Registry() == nil {
		t.Error("registry not initialized")
	}
	if s.IsRunning() {
		t.Error("server should not report running before Start")
	}
}

func TestRequireInit_BeforeStart(t *testing.T) {
	s := newTestServer(t)

	// Health does not require the service stack.
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health before Start: expected 200, got %d", rec.Code)
	}

	// History does, and the stack is only wired in Start.
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/history", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("history before Start: expected 503, got %d", rec.Code)
	}
}
