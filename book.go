package bookshelf

import (
	"context"
	"strings"
)

// Book represents a single book in the collection.
// The JSON field names are the persisted format and must not change.
type Book struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       int    `json:"year"`
	IsComplete bool   `json:"isComplete"`
}

// TitleMatches reports whether the book's title equals query once both
// are lowercased. It is an exact match, not a substring match.
func (b *Book) TitleMatches(query string) bool {
	return strings.ToLower(b.Title) == strings.ToLower(query)
}

// Clone returns a copy of the book.
func (b *Book) Clone() *Book {
	other := *b
	return &other
}

// Apply overwrites every user-editable field with the values in fields.
// The ID is left untouched.
func (b *Book) Apply(fields BookFields) {
	b.Title = fields.Title
	b.Author = fields.Author
	b.Year = fields.Year
	b.IsComplete = fields.IsComplete
}

// BookFields is the full set of user-supplied fields of a book. Field
// content is not validated; constraining input is the caller's job.
type BookFields struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       int    `json:"year"`
	IsComplete bool   `json:"isComplete"`
}

// BookService represents a service for managing the book collection.
type BookService interface {
	// CreateBook assigns a fresh ID and appends a new book to the collection.
	CreateBook(ctx context.Context, fields BookFields) (*Book, error)

	// FindBookByID retrieves a book by ID.
	// Returns ENOTFOUND if book does not exist.
	FindBookByID(ctx context.Context, id string) (*Book, error)

	// FindBookIndexByID returns the position of a book in the collection.
	// Returns -1 and ENOTFOUND if book does not exist.
	FindBookIndexByID(ctx context.Context, id string) (int, error)

	// UpdateBook replaces all user-editable fields of a book.
	// Returns ENOTFOUND if book does not exist.
	UpdateBook(ctx context.Context, id string, fields BookFields) (*Book, error)

	// SetBookComplete sets the read status of a book.
	// Returns ENOTFOUND if book does not exist.
	SetBookComplete(ctx context.Context, id string, complete bool) (*Book, error)

	// DeleteBook removes a book, keeping the order of the remaining books.
	// Returns ENOTFOUND if book does not exist.
	DeleteBook(ctx context.Context, id string) error

	// SearchBooks returns books whose title equals query, ignoring case.
	// Returns an empty slice when nothing matches.
	SearchBooks(ctx context.Context, query string) ([]*Book, error)

	// Books returns the whole collection in insertion order.
	Books(ctx context.Context) ([]*Book, error)
}
