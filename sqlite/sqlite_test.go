package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bookshelf/sqlite"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM blobs").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/test.db")
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}

func TestDB_PingContext(t *testing.T) {
	t.Parallel()

	t.Run("fails before open", func(t *testing.T) {
		t.Parallel()

		require.Error(t, sqlite.NewDB(":memory:").PingContext(context.Background()))
	})

	t.Run("succeeds after open", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, setupTestDB(t).PingContext(context.Background()))
	})
}

func TestDB_Close(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	require.NoError(t, db.Close())

	require.Error(t, db.PingContext(context.Background()), "closed database must not ping")
	require.NoError(t, db.Close(), "closing twice is a no-op")
	require.Equal(t, ":memory:", db.Path())
}
