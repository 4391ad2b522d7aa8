package main

import (
	"fmt"

	"github.com/fwojciec/bookshelf"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	fields, err := bookFields(c.Title, c.Author, c.Year, c.Complete)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	book, err := deps.Books.UpdateBook(deps.Ctx, c.ID, fields)
	if err != nil {
		reportBookError(deps, c.ID, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %q (%s)\n", book.Title, book.ID)
	return nil
}
