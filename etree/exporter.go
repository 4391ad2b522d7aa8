// Package etree exports the book collection as XML.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/bookshelf"
)

// Ensure Exporter implements bookshelf.Exporter at compile time.
var _ bookshelf.Exporter = (*Exporter)(nil)

// Exporter writes books as an indented XML document:
//
//	<books>
//	  <book id="..." complete="false">
//	    <title>...</title>
//	    <author>...</author>
//	    <year>...</year>
//	  </book>
//	</books>
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes books to w.
func (e *Exporter) Export(w io.Writer, books []*bookshelf.Book) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("books")
	for _, b := range books {
		el := root.CreateElement("book")
		el.CreateAttr("id", b.ID)
		el.CreateAttr("complete", strconv.FormatBool(b.IsComplete))
		el.CreateElement("title").SetText(b.Title)
		el.CreateElement("author").SetText(b.Author)
		el.CreateElement("year").SetText(strconv.Itoa(b.Year))
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
