package bookshelf

import "io"

// Exporter writes a read-only rendition of books to w.
type Exporter interface {
	Export(w io.Writer, books []*Book) error
}

// Format names an export format.
type Format string

// Export formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXML      Format = "xml"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)
