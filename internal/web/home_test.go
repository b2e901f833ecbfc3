package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHomeHandlerServesPlaceholderPage(t *testing.T) {
	resp := httptest.NewRecorder()
	HomeHandler()(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html content type, got %q", ct)
	}

	body := resp.Body.String()
	if !strings.Contains(body, "Social Contract App") {
		t.Fatalf("expected page to contain the app title, got:\n%s", body)
	}
	if !strings.Contains(body, "Build your features here.") {
		t.Fatalf("expected page to contain the placeholder paragraph, got:\n%s", body)
	}
	if !strings.Contains(body, "<title>Social Contract App</title>") {
		t.Fatalf("expected document title, got:\n%s", body)
	}
}

func TestHomeHandlerIsStable(t *testing.T) {
	h := HomeHandler()

	first := httptest.NewRecorder()
	h(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h(second, httptest.NewRequest(http.MethodGet, "/", nil))

	if first.Body.String() != second.Body.String() {
		t.Fatalf("expected identical bodies across requests")
	}
	if cl := second.Header().Get("Content-Length"); cl == "" || cl == "0" {
		t.Fatalf("expected a non-zero Content-Length, got %q", cl)
	}
}
