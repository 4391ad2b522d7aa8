package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/bookshelf"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	books, err := deps.Books.Books(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	shown := 0
	for _, b := range books {
		if (c.Read && !b.IsComplete) || (c.Unread && b.IsComplete) {
			continue
		}
		printBook(deps.Stdout, b)
		shown++
	}

	if shown == 0 {
		fmt.Fprintln(deps.Stdout, "No books found. Use 'bookshelf add' to add one.")
	}
	return nil
}

// printBook writes a one-line summary of b.
func printBook(w io.Writer, b *bookshelf.Book) {
	mark := " "
	if b.IsComplete {
		mark = "x"
	}
	fmt.Fprintf(w, "%s  [%s]  %s  %s  %d\n", b.ID, mark, b.Title, b.Author, b.Year)
}
