package imageserver

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Server serves rendered chart PNGs out of a single flat directory.
// Anything that is not a plain PNG name resolving inside that directory
// is a 404.
type Server struct {
	dir     string
	logger  *slog.Logger
	limiter *rate.Limiter
}

func New(dir string, logger *slog.Logger) *Server {
	return &Server{
		dir:     dir,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(200), 400),
	}
}

// Router builds the chi router for the image server. CORS headers go on
// every response, image or 404, so browser clients can always read the
// outcome.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.cors)
	r.Use(s.throttle)
	r.Get("/*", s.serveImage)
	return r
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveImage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")

	// Only flat PNG names are valid; anything with a separator or a
	// parent reference never matches a stored artifact.
	if !strings.HasSuffix(name, ".png") ||
		strings.ContainsAny(name, "/\\") ||
		strings.Contains(name, "..") ||
		name != filepath.Base(name) {
		s.notFound(w, r)
		return
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		s.notFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("image not found", "path", r.URL.Path)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("<h1>404 Not Found</h1>")) //nolint:errcheck
}
