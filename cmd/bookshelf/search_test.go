package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bookshelf"
	main "github.com/fwojciec/bookshelf/cmd/bookshelf"
	"github.com/fwojciec/bookshelf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matching books", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		books := &mock.BookService{
			SearchBooksFn: func(_ context.Context, query string) ([]*bookshelf.Book, error) {
				gotQuery = query
				return []*bookshelf.Book{{ID: "BS1-aaaaaaa", Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937}}, nil
			},
		}
		deps, stdout, _ := testDeps(books)

		err := (&main.SearchCmd{Query: "the HOBBIT"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "the HOBBIT", gotQuery)
		assert.Contains(t, stdout.String(), "BS1-aaaaaaa  [ ]  The Hobbit")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			SearchBooksFn: func(_ context.Context, _ string) ([]*bookshelf.Book, error) {
				return []*bookshelf.Book{}, nil
			},
		}
		deps, stdout, _ := testDeps(books)

		err := (&main.SearchCmd{Query: "Hobbit"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No books titled "Hobbit"`)
	})
}
