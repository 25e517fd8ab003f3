package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Ivaneres/coffee/internal/errors"
)

func newTestStore(t *testing.T) *FileTokenStore {
	t.Helper()
	store, err := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatalf("NewFileTokenStore() error: %v", err)
	}
	return store
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("tok-abc"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("Load() = %q, want %q", token, "tok-abc")
	}
}

func TestFileTokenStoreSaveReplaces(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("old"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Save("new"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if token != "new" {
		t.Errorf("Load() = %q, want %q", token, "new")
	}
}

func TestFileTokenStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load(); !errors.Is(err, errors.ErrTokenNotFound) {
		t.Errorf("Load() error = %v, want ErrTokenNotFound", err)
	}
}

func TestFileTokenStoreLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("  \n"), 0600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	store, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("NewFileTokenStore() error: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, errors.ErrTokenNotFound) {
		t.Errorf("Load() on blank file error = %v, want ErrTokenNotFound", err)
	}
}

func TestFileTokenStoreClear(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, errors.ErrTokenNotFound) {
		t.Errorf("Load() after Clear() error = %v, want ErrTokenNotFound", err)
	}

	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
}

func TestFileTokenStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file mode checks are not meaningful on Windows")
	}

	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("NewFileTokenStore() error: %v", err)
	}
	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("token file mode = %o, want 0600", got)
	}
}
