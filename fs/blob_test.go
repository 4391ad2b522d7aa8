package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bookshelf"
	"github.com/fwojciec/bookshelf/fs"
	"github.com/fwojciec/bookshelf/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: File Blob Storage
// Each key lives in its own file, replaced atomically on every write

func TestBlobStore_SetThenGet(t *testing.T) {
	t.Parallel()

	// Given a store in an empty directory
	store := fs.NewBlobStore(filepath.Join(t.TempDir(), "data"))
	ctx := context.Background()

	// When I store a value
	require.NoError(t, store.Set(ctx, "book-shelf", `[{"id":"a"}]`))

	// Then reading it returns the same value
	got, err := store.Get(ctx, "book-shelf")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, got)
}

func TestBlobStore_GetAbsentKey(t *testing.T) {
	t.Parallel()

	// Given a store with nothing in it
	store := fs.NewBlobStore(t.TempDir())

	// When I read a key
	_, err := store.Get(context.Background(), "book-shelf")

	// Then the key is reported as not found
	assert.Equal(t, bookshelf.ENOTFOUND, bookshelf.ErrorCode(err))
}

func TestBlobStore_SetReplacesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	// Given a store with a value
	dir := t.TempDir()
	store := fs.NewBlobStore(dir)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", "first"))

	// When I overwrite it
	require.NoError(t, store.Set(ctx, "k", "second"))

	// Then only the new value remains
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// And the directory holds exactly one file
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBlobStore_KeyIsEscaped(t *testing.T) {
	t.Parallel()

	// Given a key containing a path separator
	dir := t.TempDir()
	store := fs.NewBlobStore(dir)

	// When I store it
	require.NoError(t, store.Set(context.Background(), "../escape", "x"))

	// Then the file stays inside the directory
	assert.Equal(t, dir, filepath.Dir(store.Path("../escape")))
	_, err := os.Stat(store.Path("../escape"))
	assert.NoError(t, err)
}

func TestBlobStore_Ping(t *testing.T) {
	t.Parallel()

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "data")

		require.NoError(t, fs.NewBlobStore(dir).Ping(context.Background()))

		_, err := os.Stat(dir)
		assert.NoError(t, err)
	})

	t.Run("reports EUNAVAILABLE when directory is a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		err := fs.NewBlobStore(path).Ping(context.Background())

		assert.Equal(t, bookshelf.EUNAVAILABLE, bookshelf.ErrorCode(err))
	})
}

func TestBlobStore_Stat(t *testing.T) {
	t.Parallel()

	store := fs.NewBlobStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "book-shelf", "[]"))

	info, err := store.Stat(ctx, "book-shelf")

	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size)
	assert.Len(t, info.Hash, 16)
	assert.False(t, info.UpdatedAt.IsZero())

	_, err = store.Stat(ctx, "missing")
	assert.Equal(t, bookshelf.ENOTFOUND, bookshelf.ErrorCode(err))
}

func TestBlobStore_SnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	// Given a gateway over a file store
	g := snapshot.NewGateway(fs.NewBlobStore(t.TempDir()), "")
	ctx := context.Background()
	books := []*bookshelf.Book{
		{ID: "BS1-a", Title: "1984", Author: "Orwell", Year: 1949, IsComplete: true},
		{ID: "BS1-b", Title: "Dune", Author: "Herbert", Year: 1965},
	}

	// When I save and load the collection
	require.NoError(t, g.Save(ctx, books))
	loaded, err := g.Load(ctx)

	// Then it is reproduced exactly
	require.NoError(t, err)
	assert.Equal(t, books, loaded)
}
