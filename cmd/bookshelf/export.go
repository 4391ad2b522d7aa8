package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/bookshelf"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exporter, ok := deps.Exporters[bookshelf.Format(c.Format)]
	if !ok {
		err := bookshelf.Errorf(bookshelf.EINVALID, "unsupported export format %q", c.Format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	books, err := deps.Books.Books(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookshelf.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		return exporter.Export(deps.Stdout, books)
	}

	if err := writeExport(c.Output, exporter, books); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d books to %s\n", len(books), c.Output)
	return nil
}

func writeExport(path string, exporter bookshelf.Exporter, books []*bookshelf.Book) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return exporter.Export(f, books)
}
