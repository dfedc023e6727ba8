// Package storage keeps raw image bytes out of the database. Rows only hold a
// storage-relative path handed back by the blob store.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type BlobStore interface {
	Save(data []byte, ext string) (string, error)
	Delete(path string) error
}

// FileBlobStore writes blobs under a base directory with uuid filenames.
type FileBlobStore struct {
	baseDir string
}

func NewFileBlobStore(baseDir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob directory: %w", err)
	}
	return &FileBlobStore{baseDir: baseDir}, nil
}

func (s *FileBlobStore) Save(data []byte, ext string) (string, error) {
	name := uuid.NewString()
	if ext != "" {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		name += ext
	}
	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing blob: %w", err)
	}
	return name, nil
}

func (s *FileBlobStore) Delete(path string) error {
	// Paths come back from clients via the database; never let one escape
	// the base directory.
	if path == "" || filepath.Base(path) != path {
		return fmt.Errorf("invalid blob path %q", path)
	}
	err := os.Remove(filepath.Join(s.baseDir, path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryBlobStore holds blobs in a map, for tests.
type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Save(data []byte, ext string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := uuid.NewString()
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name += ext
	s.blobs[name] = append([]byte(nil), data...)
	return name, nil
}

func (s *MemoryBlobStore) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

func (s *MemoryBlobStore) Get(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[path]
	return data, ok
}

func (s *MemoryBlobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
