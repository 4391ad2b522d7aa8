package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bookshelf"
)

// Compile-time interface verification.
var (
	_ bookshelf.BlobStore     = (*BlobStore)(nil)
	_ bookshelf.Pinger        = (*BlobStore)(nil)
	_ bookshelf.BlobInspector = (*BlobStore)(nil)
)

// BlobStore implements bookshelf.BlobStore using SQLite.
type BlobStore struct {
	db *DB
}

// NewBlobStore creates a new BlobStore.
func NewBlobStore(db *DB) *BlobStore {
	return &BlobStore{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// Get returns the value stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", bookshelf.Errorf(bookshelf.ENOTFOUND, "blob %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, hash, size, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			hash = excluded.hash,
			size = excluded.size,
			updated_at = excluded.updated_at
	`, key, value, hashContent(value), len(value), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Ping reports whether the database can be used.
func (s *BlobStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return bookshelf.Errorf(bookshelf.EUNAVAILABLE, "database unavailable: %v", err)
	}
	return nil
}

// Stat returns metadata about the value stored under key.
func (s *BlobStore) Stat(ctx context.Context, key string) (*bookshelf.BlobInfo, error) {
	info := bookshelf.BlobInfo{Key: key}
	var updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT hash, size, updated_at
		FROM blobs
		WHERE key = ?
	`, key).Scan(&info.Hash, &info.Size, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookshelf.Errorf(bookshelf.ENOTFOUND, "blob %q not found", key)
	}
	if err != nil {
		return nil, err
	}

	info.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}
	return &info, nil
}
