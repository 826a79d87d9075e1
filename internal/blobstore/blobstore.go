// Package blobstore stores rendered publication files on the local
// filesystem. A directory lock guards against two processes writing the
// same blob directory; writes go through a temp file and rename so readers
// never observe a partial file.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrNotFound marks downloads of files that were never stored. Absence of
// a file for a given suffix means that output was not applicable for the
// list type, so callers often treat this as a normal outcome.
var ErrNotFound = errors.New("blob not found")

// Store is a filesystem-backed blob store rooted at one directory.
type Store struct {
	dir  string
	lock *flock.Flock
}

// Open prepares the blob directory and takes the directory lock.
func Open(dir string) (*Store, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, errors.New("blobstore: directory must not be empty")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}
	lock := flock.New(filepath.Join(trimmed, ".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock blob directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("blob directory %s is locked by another process", trimmed)
	}
	return &Store{dir: trimmed, lock: lock}, nil
}

// Close releases the directory lock.
func (s *Store) Close() error {
	if s == nil || s.lock == nil {
		return nil
	}
	return s.lock.Unlock()
}

// Upload writes a blob under the given name, replacing any existing file.
func (s *Store) Upload(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("publish blob %s: %w", name, err)
	}
	return nil
}

// Download returns the contents of a stored blob.
func (s *Store) Download(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("blob %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return data, nil
}

// Size returns the stored size of a blob in bytes without reading it.
func (s *Store) Size(ctx context.Context, name string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("blob %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("stat blob %s: %w", name, err)
	}
	return info.Size(), nil
}

// resolve rejects names that would escape the blob directory.
func (s *Store) resolve(name string) (string, error) {
	cleaned := filepath.Clean(strings.TrimSpace(name))
	if cleaned == "" || cleaned == "." || strings.Contains(cleaned, string(filepath.Separator)) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return filepath.Join(s.dir, cleaned), nil
}
