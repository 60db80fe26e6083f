package handlers

import (
	"net/http"
	"strings"
	"testing"
)

// TestHealthEndpoints проверяет служебные ответы API.
func TestHealthEndpoints(t *testing.T) {
	c, rec := getRequest(newTestEcho(), "/api/")
	if err := Root(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "online") {
		t.Fatalf("unexpected root body: %s", rec.Body.String())
	}

	c, rec = getRequest(newTestEcho(), "/api/health")
	if err := Health(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}
