package main

import (
	"fmt"
)

// Run executes the done command.
func (c *DoneCmd) Run(deps *Dependencies) error {
	return setComplete(deps, c.ID, true)
}

// Run executes the undone command.
func (c *UndoneCmd) Run(deps *Dependencies) error {
	return setComplete(deps, c.ID, false)
}

func setComplete(deps *Dependencies, id string, complete bool) error {
	book, err := deps.Books.SetBookComplete(deps.Ctx, id, complete)
	if err != nil {
		reportBookError(deps, id, err)
		return err
	}

	if complete {
		fmt.Fprintf(deps.Stdout, "Marked %q as read\n", book.Title)
	} else {
		fmt.Fprintf(deps.Stdout, "Marked %q as unread\n", book.Title)
	}
	return nil
}
