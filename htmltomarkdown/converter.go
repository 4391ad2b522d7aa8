// Package htmltomarkdown exports the book collection as Markdown by
// converting the rendered HTML page.
package htmltomarkdown

import (
	"bytes"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/bookshelf"
)

// Ensure Exporter implements bookshelf.Exporter at compile time.
var _ bookshelf.Exporter = (*Exporter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", bookshelf.Errorf(bookshelf.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}

// Exporter renders books with an HTML exporter and converts the page.
type Exporter struct {
	page bookshelf.Exporter
	conv *Converter
}

// NewExporter creates a new Exporter on top of an HTML page exporter.
func NewExporter(page bookshelf.Exporter) *Exporter {
	return &Exporter{page: page, conv: NewConverter()}
}

// Export writes books to w as Markdown.
func (e *Exporter) Export(w io.Writer, books []*bookshelf.Book) error {
	var buf bytes.Buffer
	if err := e.page.Export(&buf, books); err != nil {
		return err
	}

	md, err := e.conv.Convert(buf.String())
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, strings.TrimSpace(md)+"\n")
	return err
}
