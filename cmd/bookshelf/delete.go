package main

import (
	"fmt"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	book, err := deps.Books.FindBookByID(deps.Ctx, c.ID)
	if err != nil {
		reportBookError(deps, c.ID, err)
		return err
	}

	if err := deps.Books.DeleteBook(deps.Ctx, c.ID); err != nil {
		reportBookError(deps, c.ID, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", book.Title)
	return nil
}
