package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bookshelf/mock"
	bsslog "github.com/fwojciec/bookshelf/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingBlobStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("logs key, size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := mock.NewMapBlobStore(map[string]string{"book-shelf": "[]"})

		store := bsslog.NewLoggingBlobStore(inner, logger)
		value, err := store.Get(context.Background(), "book-shelf")

		require.NoError(t, err)
		assert.Equal(t, "[]", value)
		output := buf.String()
		assert.Contains(t, output, "blob get")
		assert.Contains(t, output, "key=book-shelf")
		assert.Contains(t, output, "size=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BlobStore{
			GetFn: func(context.Context, string) (string, error) {
				return "", errors.New("disk gone")
			},
		}

		store := bsslog.NewLoggingBlobStore(inner, logger)
		_, err := store.Get(context.Background(), "book-shelf")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk gone\"")
	})
}

func TestLoggingBlobStore_Set(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := map[string]string{}

	store := bsslog.NewLoggingBlobStore(mock.NewMapBlobStore(m), logger)
	err := store.Set(context.Background(), "book-shelf", `[{"id":"a"}]`)

	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, m["book-shelf"])
	output := buf.String()
	assert.Contains(t, output, "blob set")
	assert.Contains(t, output, "size=12")
}

func TestLoggingBlobStore_Ping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.BlobStore{
		PingFn: func(context.Context) error { return errors.New("read-only") },
	}

	err := bsslog.NewLoggingBlobStore(inner, logger).Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, buf.String(), "blob ping")
}
