// Package session holds the client's authentication state: the bearer token
// and the cached user profile. The token is the only piece of state that
// survives restarts; it lives in a single file and is cleared on logout.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Ivaneres/coffee/internal/errors"
)

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	// Save persists the token, replacing any previous one.
	Save(token string) error
	// Load returns the stored token, or errors.ErrTokenNotFound if none
	// is stored.
	Load() (string, error)
	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}

// FileTokenStore stores the token as a single file on disk.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

// NewFileTokenStore creates a FileTokenStore at the given path. The parent
// directory is created if it doesn't exist.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.NewSessionError("failed to create token directory", err).WithPath(path)
	}
	return &FileTokenStore{path: path}, nil
}

// Save persists the token using an atomic write. The file is created with
// owner-only permissions.
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := atomicWriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return errors.NewSessionError("failed to save token", err).WithPath(s.path)
	}
	return nil
}

// Load returns the stored token.
func (s *FileTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.ErrTokenNotFound
		}
		return "", errors.NewSessionError("failed to read token", err).WithPath(s.path)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errors.ErrTokenNotFound
	}
	return token, nil
}

// Clear removes the stored token file.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.NewSessionError("failed to clear token", err).WithPath(s.path)
	}
	return nil
}

// atomicWriteFile writes data to path via a temp file and rename so a crash
// mid-write never leaves a truncated token behind.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
