package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bookshelf"
	main "github.com/fwojciec/bookshelf/cmd/bookshelf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes book by ID", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		books := shelfOf(&bookshelf.Book{ID: "BS1-aaaaaaa", Title: "Dune"})
		books.DeleteBookFn = func(_ context.Context, id string) error {
			deletedID = id
			return nil
		}
		deps, stdout, _ := testDeps(books)

		err := (&main.DeleteCmd{ID: "BS1-aaaaaaa"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "BS1-aaaaaaa", deletedID)
		assert.Contains(t, stdout.String(), `Deleted "Dune"`)
	})

	t.Run("reports unknown ID without deleting", func(t *testing.T) {
		t.Parallel()

		books := shelfOf()
		books.DeleteBookFn = func(_ context.Context, _ string) error {
			t.Fatal("DeleteBook should not be called")
			return nil
		}
		deps, _, stderr := testDeps(books)

		err := (&main.DeleteCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, bookshelf.ENOTFOUND, bookshelf.ErrorCode(err))
		assert.Contains(t, stderr.String(), `book "missing" not found`)
	})
}
