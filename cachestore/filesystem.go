package cachestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Filesystem is a Backend rooted at a directory on disk. Keys map to <root>/<key>.clbin; the root is created
// recursively if it does not already exist. Put writes to a uniquely-named temporary file in root and renames
// it into place, so a concurrent Get never observes a partially-written entry.
type Filesystem struct {
	root     string
	dirMode  os.FileMode
	fileMode os.FileMode
}

// Option configures a Filesystem backend at construction.
type Option func(*Filesystem)

// WithDirMode sets the permission bits used when creating root and its missing parents. The default is 0o755.
func WithDirMode(mode os.FileMode) Option {
	return func(f *Filesystem) { f.dirMode = mode }
}

// WithFileMode sets the permission bits used when writing entries. The default is 0o644.
func WithFileMode(mode os.FileMode) Option {
	return func(f *Filesystem) { f.fileMode = mode }
}

// NewFilesystem returns a Filesystem backend rooted at root, creating root (and any missing parents) if needed.
func NewFilesystem(root string, opts ...Option) (*Filesystem, error) {
	f := &Filesystem{root: root, dirMode: 0o755, fileMode: 0o644}
	for _, opt := range opts {
		opt(f)
	}
	if err := os.MkdirAll(root, f.dirMode); err != nil {
		return nil, fmt.Errorf("cachestore: create root %q: %w", root, err)
	}
	return f, nil
}

func (f *Filesystem) pathFor(key string) string {
	return filepath.Join(f.root, key+".clbin")
}

// Get reads the entry for key. A missing file maps to ErrNotFound.
func (f *Filesystem) Get(key string) ([]byte, error) {
	bytes, err := os.ReadFile(f.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cachestore: read %q: %w", key, err)
	}
	return bytes, nil
}

// Put writes bytes under key by writing to a temporary file in root and renaming it into place, so a reader
// never observes a partial write.
func (f *Filesystem) Put(key string, bytes []byte) error {
	tmp := filepath.Join(f.root, fmt.Sprintf(".%s.%s.tmp", key, uuid.NewString()))
	if err := os.WriteFile(tmp, bytes, f.fileMode); err != nil {
		return fmt.Errorf("cachestore: write temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmp, f.pathFor(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cachestore: rename into place for %q: %w", key, err)
	}
	return nil
}
