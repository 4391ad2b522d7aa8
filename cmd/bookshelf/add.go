package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bookshelf"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	fields, err := bookFields(c.Title, c.Author, c.Year, c.Complete)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	book, err := deps.Books.CreateBook(deps.Ctx, fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s)\n", book.Title, book.ID)
	return nil
}

// bookFields trims and checks user input. The store accepts anything, so
// the command line is where blank titles and authors are turned away.
func bookFields(title, author string, year int, complete bool) (bookshelf.BookFields, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return bookshelf.BookFields{}, bookshelf.Errorf(bookshelf.EINVALID, "title must not be empty")
	}
	if author == "" {
		return bookshelf.BookFields{}, bookshelf.Errorf(bookshelf.EINVALID, "author must not be empty")
	}
	return bookshelf.BookFields{
		Title:      title,
		Author:     author,
		Year:       year,
		IsComplete: complete,
	}, nil
}
