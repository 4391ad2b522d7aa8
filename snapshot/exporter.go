package snapshot

import (
	"io"

	"github.com/fwojciec/bookshelf"
)

// Ensure Exporter implements bookshelf.Exporter at compile time.
var _ bookshelf.Exporter = (*Exporter)(nil)

// Exporter writes books in the persisted JSON form, one document per call.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes books to w.
func (e *Exporter) Export(w io.Writer, books []*bookshelf.Book) error {
	data, err := Encode(books)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, data+"\n")
	return err
}
