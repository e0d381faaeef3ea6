package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the session as a single record under a well-known
// location. Absence is not an error: Load returns (nil, nil) when
// nothing has been saved.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// FileStore keeps the session record in one JSON file, the desktop
// analog of the browser's localStorage entry.
type FileStore struct {
	Path string
}

// NewFileStore resolves the session file path. An empty path falls back
// to the user config directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(base, "clinicdesk", "session.json")
	}
	return &FileStore{Path: path}, nil
}

func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	// The record carries a credential; keep it owner-readable only.
	return os.WriteFile(s.Path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
