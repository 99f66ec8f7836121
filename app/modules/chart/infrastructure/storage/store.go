package chartstorage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes rendered PNGs to a local directory and hands back the URL
// the image server will serve them under. File names carry the chart
// type, the date, and a random suffix, so concurrent saves never
// collide and an existing file is never overwritten.
type Store struct {
	dir     string
	baseURL string
	logger  *slog.Logger
}

// New ensures the artifact directory exists and returns a Store rooted
// there. baseURL is the externally visible prefix, without a trailing
// slash.
func New(dir, baseURL string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Save persists one PNG and returns its public URL. The URL is returned
// only after the file is fully written.
func (s *Store) Save(chartType string, png []byte) (string, error) {
	name := fmt.Sprintf("%s_%s_%s.png", chartType, time.Now().Format("20060102"), shortID())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("failed to write chart image: %w", err)
	}
	s.logger.Debug("chart image saved", "path", path, "bytes", len(png))
	return s.baseURL + "/" + name, nil
}

// Dir returns the directory images are written into.
func (s *Store) Dir() string { return s.dir }

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
}
