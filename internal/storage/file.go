package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSlot stores each key as <dir>/<key>.json.
type FileSlot struct {
	dir string
}

// NewFileSlot creates the directory if needed and returns a slot rooted at it.
func NewFileSlot(dir string) (*FileSlot, error) {
	if dir == "" {
		return nil, &Error{Message: "file slot directory is empty"}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to create slot directory %s", dir), Cause: err}
	}
	return &FileSlot{dir: dir}, nil
}

// Path returns the file backing key.
func (s *FileSlot) Path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}

// Load reads the value stored under key.
func (s *FileSlot) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &Error{Message: fmt.Sprintf("failed to read slot %s", key), Cause: err}
	}
	return data, nil
}

// Save writes value to a temp file and renames it over the slot file, so readers never
// observe a partial snapshot.
func (s *FileSlot) Save(_ context.Context, key string, value []byte) error {
	path := s.Path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to create temp file for slot %s", key), Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &Error{Message: fmt.Sprintf("failed to write slot %s", key), Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &Error{Message: fmt.Sprintf("failed to close slot %s", key), Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &Error{Message: fmt.Sprintf("failed to replace slot %s", key), Cause: err}
	}
	return nil
}

// Close is a no-op for file slots.
func (s *FileSlot) Close() error {
	return nil
}
