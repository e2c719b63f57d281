// Package store persists the note collection as a JSON blob in a single
// file under the user's config directory. Load is deliberately forgiving:
// absent or malformed data yields an empty collection, never an error.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/marcus/notable/internal/note"
)

const (
	storeDir  = ".config/notable"
	storeFile = "notes.json"
)

// FileStore reads and writes the serialized note collection at a fixed path.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a store for the given path. An empty path uses the
// default location under the user's home directory.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// DefaultPath returns the default notes file path, or a relative fallback
// when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return storeFile
	}
	return filepath.Join(home, storeDir, storeFile)
}

// Path returns the file path backing this store.
func (s *FileStore) Path() string { return s.path }

// Load reads the persisted collection. A missing file or unparseable data
// returns an empty collection; corruption is logged but never surfaced.
func (s *FileStore) Load() ([]note.Note, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("notes file unreadable, starting empty", "path", s.path, "error", err)
		}
		return nil, nil
	}

	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.logger.Warn("notes file malformed, starting empty", "path", s.path, "error", err)
		return nil, nil
	}
	return notes, nil
}

// Save writes the collection synchronously. The enclosing directory is
// created on first save.
func (s *FileStore) Save(notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
