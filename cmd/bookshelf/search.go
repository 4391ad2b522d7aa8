package main

import (
	"fmt"

	"github.com/fwojciec/bookshelf"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	books, err := deps.Books.SearchBooks(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	if len(books) == 0 {
		fmt.Fprintf(deps.Stdout, "No books titled %q.\n", c.Query)
		return nil
	}

	for _, b := range books {
		printBook(deps.Stdout, b)
	}
	return nil
}
