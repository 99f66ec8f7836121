package imageserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(dir, logger), dir
}

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestServeExistingImage(t *testing.T) {
	srv, dir := newTestServer(t)
	writePNG(t, dir, "line_20250101_abc123def.png")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/line_20250101_abc123def.png", nil)
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
		t.Error("body is not the stored image")
	}
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	srv, dir := newTestServer(t)
	writePNG(t, dir, "ok.png")

	paths := []string{"/ok.png", "/missing.png", "/not-an-image.txt"}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Router().ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("%s: Allow-Origin = %q, want *", path, got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
			t.Errorf("%s: Allow-Methods = %q", path, got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("%s: Allow-Headers = %q", path, got)
		}
	}
}

func TestOptionsPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/anything.png", nil)
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("preflight missing CORS headers")
	}
}

func TestNotFoundResponses(t *testing.T) {
	srv, dir := newTestServer(t)
	writePNG(t, dir, "real.png")

	// A secret outside the image dir must never be reachable.
	secret := filepath.Join(dir, "..", "secret.png")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths := []string{
		"/missing.png",
		"/readme.txt",
		"/%2e%2e/secret.png",
		"/sub/real.png",
		"/..%2fsecret.png",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), "<h1>404 Not Found</h1>") {
			t.Errorf("%s: body = %q", path, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("%s: Content-Type = %q", path, ct)
		}
	}
}
