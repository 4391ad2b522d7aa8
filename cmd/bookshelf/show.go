package main

import (
	"fmt"

	"github.com/fwojciec/bookshelf"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	book, err := deps.Books.FindBookByID(deps.Ctx, c.ID)
	if err != nil {
		reportBookError(deps, c.ID, err)
		return err
	}
	pos, err := deps.Books.FindBookIndexByID(deps.Ctx, c.ID)
	if err != nil {
		reportBookError(deps, c.ID, err)
		return err
	}

	status := "unread"
	if book.IsComplete {
		status = "read"
	}
	fmt.Fprintf(deps.Stdout, "ID:       %s\n", book.ID)
	fmt.Fprintf(deps.Stdout, "Title:    %s\n", book.Title)
	fmt.Fprintf(deps.Stdout, "Author:   %s\n", book.Author)
	fmt.Fprintf(deps.Stdout, "Year:     %d\n", book.Year)
	fmt.Fprintf(deps.Stdout, "Status:   %s\n", status)
	fmt.Fprintf(deps.Stdout, "Position: %d\n", pos+1)
	return nil
}

// reportBookError prints err, pointing the user at 'list' when id is unknown.
func reportBookError(deps *Dependencies, id string, err error) {
	if bookshelf.ErrorCode(err) == bookshelf.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: book %q not found. Use 'bookshelf list' to see available books.\n", id)
		return
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
}
