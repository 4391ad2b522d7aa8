package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bookshelf"
	"github.com/fwojciec/bookshelf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_ImplementsInterfaces(t *testing.T) {
	t.Parallel()

	var _ bookshelf.BlobStore = &mock.BlobStore{}
	var _ bookshelf.Pinger = &mock.BlobStore{}
}

func TestBlobStore_Ping(t *testing.T) {
	t.Parallel()

	t.Run("nil PingFn reports available", func(t *testing.T) {
		t.Parallel()

		s := &mock.BlobStore{}

		assert.NoError(t, s.Ping(context.Background()))
	})

	t.Run("delegates to PingFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.BlobStore{
			PingFn: func(context.Context) error {
				return bookshelf.Errorf(bookshelf.EUNAVAILABLE, "no storage")
			},
		}

		err := s.Ping(context.Background())

		assert.Equal(t, bookshelf.EUNAVAILABLE, bookshelf.ErrorCode(err))
	})
}

func TestNewMapBlobStore(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for absent key", func(t *testing.T) {
		t.Parallel()

		s := mock.NewMapBlobStore(map[string]string{})

		_, err := s.Get(context.Background(), "book-shelf")

		assert.Equal(t, bookshelf.ENOTFOUND, bookshelf.ErrorCode(err))
	})

	t.Run("stores values in the map", func(t *testing.T) {
		t.Parallel()

		m := map[string]string{}
		s := mock.NewMapBlobStore(m)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "book-shelf", "[]"))
		got, err := s.Get(ctx, "book-shelf")

		require.NoError(t, err)
		assert.Equal(t, "[]", got)
		assert.Equal(t, "[]", m["book-shelf"])
	})
}
