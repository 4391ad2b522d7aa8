// Package html renders the book collection as an HTML page.
package html

import (
	"io"
	"strconv"

	"github.com/fwojciec/bookshelf"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Renderer implements bookshelf.Exporter at compile time.
var _ bookshelf.Exporter = (*Renderer)(nil)

// DefaultTitle is the page title used when Renderer.Title is empty.
const DefaultTitle = "Bookshelf"

// Renderer builds a page with two shelves, unread books first, each book
// shown as a card. Element IDs and data-testid attributes are stable so
// that pages can be inspected by tools.
type Renderer struct {
	Title string
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{Title: DefaultTitle}
}

// Export writes the page for books to w.
func (r *Renderer) Export(w io.Writer, books []*bookshelf.Book) error {
	return html.Render(w, r.Page(books))
}

// Page returns the document node for books.
func (r *Renderer) Page(books []*bookshelf.Book) *html.Node {
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}

	unread := element(atom.Div, "id", "uncompletedBooks", "data-testid", "incompleteBookList")
	read := element(atom.Div, "id", "completedBooks", "data-testid", "completeBookList")
	for _, b := range books {
		if b.IsComplete {
			read.AppendChild(Card(b))
		} else {
			unread.AppendChild(Card(b))
		}
	}

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	head.AppendChild(withText(element(atom.Title), title))

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(shelf("Unread", unread))
	body.AppendChild(shelf("Read", read))

	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

// Card returns the card element for a single book.
func Card(b *bookshelf.Book) *html.Node {
	card := element(atom.Div, "class", "card", "data-testid", "bookItem", "data-bookid", b.ID)
	card.AppendChild(withText(
		element(atom.H3, "class", "card-header", "data-testid", "bookItemTitle"),
		b.Title))
	card.AppendChild(withText(
		element(atom.P, "class", "card-sub-header", "data-testid", "bookItemAuthor"),
		"Author: "+b.Author))
	card.AppendChild(withText(
		element(atom.P, "class", "card-sub-header", "data-testid", "bookItemYear"),
		"Year: "+strconv.Itoa(b.Year)))
	return card
}

func shelf(heading string, list *html.Node) *html.Node {
	section := element(atom.Section)
	section.AppendChild(withText(element(atom.H2), heading))
	section.AppendChild(list)
	return section
}

// element creates an element node; attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
