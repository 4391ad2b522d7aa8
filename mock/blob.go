package mock

import (
	"context"

	"github.com/fwojciec/bookshelf"
)

var (
	_ bookshelf.BlobStore     = (*BlobStore)(nil)
	_ bookshelf.Pinger        = (*BlobStore)(nil)
	_ bookshelf.BlobInspector = (*BlobStore)(nil)
)

// BlobStore is a mock implementation of bookshelf.BlobStore.
// A nil PingFn reports the store as available.
type BlobStore struct {
	GetFn  func(ctx context.Context, key string) (string, error)
	SetFn  func(ctx context.Context, key, value string) error
	PingFn func(ctx context.Context) error
	StatFn func(ctx context.Context, key string) (*bookshelf.BlobInfo, error)
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *BlobStore) Ping(ctx context.Context) error {
	if s.PingFn == nil {
		return nil
	}
	return s.PingFn(ctx)
}

func (s *BlobStore) Stat(ctx context.Context, key string) (*bookshelf.BlobInfo, error) {
	return s.StatFn(ctx, key)
}

// NewMapBlobStore returns a BlobStore backed by m. Absent keys yield ENOTFOUND.
func NewMapBlobStore(m map[string]string) *BlobStore {
	return &BlobStore{
		GetFn: func(_ context.Context, key string) (string, error) {
			v, ok := m[key]
			if !ok {
				return "", bookshelf.Errorf(bookshelf.ENOTFOUND, "blob %q not found", key)
			}
			return v, nil
		},
		SetFn: func(_ context.Context, key, value string) error {
			m[key] = value
			return nil
		},
	}
}
