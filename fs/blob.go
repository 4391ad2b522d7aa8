// Package fs provides a blob store that keeps each value in its own file.
package fs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bookshelf"
)

// Ensure BlobStore implements the blob store interfaces at compile time.
var (
	_ bookshelf.BlobStore     = (*BlobStore)(nil)
	_ bookshelf.Pinger        = (*BlobStore)(nil)
	_ bookshelf.BlobInspector = (*BlobStore)(nil)
)

// blobExt is appended to the escaped key to form a file name.
const blobExt = ".blob"

// BlobStore implements bookshelf.BlobStore on a directory.
// Values are written to a temporary file, then renamed over the target,
// so readers never observe a partially written value.
type BlobStore struct {
	dir string
}

// NewBlobStore creates a new BlobStore rooted at dir.
// The directory is created on first write.
func NewBlobStore(dir string) *BlobStore {
	return &BlobStore{dir: dir}
}

// Path returns the file holding the value for key.
func (s *BlobStore) Path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+blobExt)
}

// Get returns the value stored under key.
func (s *BlobStore) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", bookshelf.Errorf(bookshelf.ENOTFOUND, "blob %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set stores value under key, replacing any previous value atomically.
func (s *BlobStore) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.Path(key)); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Ping reports whether the directory exists, or can be created, and is writable.
func (s *BlobStore) Ping(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return bookshelf.Errorf(bookshelf.EUNAVAILABLE, "storage directory unavailable: %v", err)
	}
	f, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return bookshelf.Errorf(bookshelf.EUNAVAILABLE, "storage directory not writable: %v", err)
	}
	f.Close()
	return os.Remove(f.Name())
}

// Stat returns metadata about the value stored under key.
func (s *BlobStore) Stat(ctx context.Context, key string) (*bookshelf.BlobInfo, error) {
	fi, err := os.Stat(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, bookshelf.Errorf(bookshelf.ENOTFOUND, "blob %q not found", key)
	}
	if err != nil {
		return nil, err
	}

	value, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return &bookshelf.BlobInfo{
		Key:       key,
		Size:      fi.Size(),
		Hash:      fmt.Sprintf("%016x", xxhash.Sum64String(value)),
		UpdatedAt: fi.ModTime().UTC(),
	}, nil
}
