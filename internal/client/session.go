package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// FileSessionStore persists a [models.Session] as a JSON document readable by
// the owner only.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Load returns the saved session or [ErrNoSession] when none exists.
func (s *FileSessionStore) Load() (models.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}
	if session.Token == "" {
		return models.Session{}, ErrNoSession
	}

	return session, nil
}

func (s *FileSessionStore) Save(session models.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}

	return os.Rename(tmp, s.path)
}

// Clear removes the session file. A missing file is not an error.
func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}
	return nil
}
