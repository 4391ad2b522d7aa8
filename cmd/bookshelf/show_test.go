package main_test

import (
	"testing"

	"github.com/fwojciec/bookshelf"
	main "github.com/fwojciec/bookshelf/cmd/bookshelf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints book details and position", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(shelfOf(
			&bookshelf.Book{ID: "BS1-aaaaaaa", Title: "Dune", Author: "Frank Herbert", Year: 1965},
			&bookshelf.Book{ID: "BS1-bbbbbbb", Title: "1984", Author: "George Orwell", Year: 1949, IsComplete: true},
		))

		err := (&main.ShowCmd{ID: "BS1-bbbbbbb"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Title:    1984")
		assert.Contains(t, out, "Author:   George Orwell")
		assert.Contains(t, out, "Year:     1949")
		assert.Contains(t, out, "Status:   read")
		assert.Contains(t, out, "Position: 2")
	})

	t.Run("reports unknown ID", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(shelfOf())

		err := (&main.ShowCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, bookshelf.ENOTFOUND, bookshelf.ErrorCode(err))
		assert.Contains(t, stderr.String(), `book "nope" not found`)
		assert.Contains(t, stderr.String(), "bookshelf list")
	})
}
