package mock

import (
	"io"

	"github.com/fwojciec/bookshelf"
)

var _ bookshelf.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of bookshelf.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, books []*bookshelf.Book) error
}

func (e *Exporter) Export(w io.Writer, books []*bookshelf.Book) error {
	return e.ExportFn(w, books)
}
