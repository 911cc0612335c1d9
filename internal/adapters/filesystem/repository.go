package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"plovermd/internal/domain"
	"plovermd/internal/logger"
	"plovermd/internal/ports"
)

const filePerms = 0644

// Repository implements ports.DictionaryRepository for a markdown file on disk
type Repository struct {
	path string
	log  *zap.SugaredLogger
}

var _ ports.DictionaryRepository = (*Repository)(nil)

// NewRepository creates a new filesystem repository
func NewRepository(path string, log *zap.SugaredLogger) *Repository {
	return &Repository{
		path: ExpandHome(path),
		log:  logger.OrNop(log),
	}
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Path returns the resolved dictionary path
func (r *Repository) Path() string {
	return r.path
}

// Load reads and parses the dictionary. A missing file is reported with
// fs.ErrNotExist; a malformed one with the domain error of the first bad line.
func (r *Repository) Load() (*domain.Document, error) {
	start := time.Now()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	doc, err := domain.ParseDocument(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}

	r.log.Debugw("loaded dictionary",
		"path", r.path,
		"translations", doc.Len(),
		"duration", time.Since(start))

	return doc, nil
}

// Save writes the reconciled document, replacing the file atomically
func (r *Repository) Save(doc *domain.Document) error {
	text := doc.Save()

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create dictionary directory: %w", err)
	}

	_, statErr := os.Stat(r.path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(r.path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}

	// atomic.WriteFile doesn't set permissions for new files
	if isNew {
		if err := os.Chmod(r.path, filePerms); err != nil {
			return fmt.Errorf("failed to set file permissions: %w", err)
		}
	}

	r.log.Debugw("saved dictionary", "path", r.path, "bytes", len(text))
	return nil
}

// ModTime reports the modification time of the dictionary file
func (r *Repository) ModTime() (time.Time, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
