package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/bookshelf"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	books, err := deps.Books.Books(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	read := 0
	for _, b := range books {
		if b.IsComplete {
			read++
		}
	}

	s := deps.Storage
	fmt.Fprintf(deps.Stdout, "Backend:    %s\n", s.Backend)
	fmt.Fprintf(deps.Stdout, "Location:   %s\n", s.Location)
	fmt.Fprintf(deps.Stdout, "Key:        %s\n", s.Key)
	if s.Persistent {
		fmt.Fprintln(deps.Stdout, "Persistent: yes")
	} else {
		fmt.Fprintln(deps.Stdout, "Persistent: no (changes are kept in memory only)")
	}
	fmt.Fprintf(deps.Stdout, "Books:      %d (%d read, %d unread)\n", len(books), read, len(books)-read)

	if s.Inspector == nil || !s.Persistent {
		return nil
	}
	info, err := s.Inspector.Stat(deps.Ctx, s.Key)
	switch {
	case bookshelf.ErrorCode(err) == bookshelf.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, "Snapshot:   none saved yet")
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	default:
		fmt.Fprintf(deps.Stdout, "Snapshot:   %d bytes, xxhash %s, updated %s\n",
			info.Size, info.Hash, info.UpdatedAt.Local().Format(time.DateTime))
	}
	return nil
}
