// Package yaml exports the book collection as YAML.
package yaml

import (
	"io"

	"github.com/fwojciec/bookshelf"
	"gopkg.in/yaml.v3"
)

// Ensure Exporter implements bookshelf.Exporter at compile time.
var _ bookshelf.Exporter = (*Exporter)(nil)

// record mirrors bookshelf.Book with the persisted field names.
type record struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Year       int    `yaml:"year"`
	IsComplete bool   `yaml:"isComplete"`
}

// Exporter writes books as a YAML sequence.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes books to w.
func (e *Exporter) Export(w io.Writer, books []*bookshelf.Book) error {
	records := make([]record, len(books))
	for i, b := range books {
		records[i] = record(*b)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
