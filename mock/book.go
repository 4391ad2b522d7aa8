package mock

import (
	"context"

	"github.com/fwojciec/bookshelf"
)

var _ bookshelf.BookService = (*BookService)(nil)

// BookService is a mock implementation of bookshelf.BookService.
type BookService struct {
	CreateBookFn        func(ctx context.Context, fields bookshelf.BookFields) (*bookshelf.Book, error)
	FindBookByIDFn      func(ctx context.Context, id string) (*bookshelf.Book, error)
	FindBookIndexByIDFn func(ctx context.Context, id string) (int, error)
	UpdateBookFn        func(ctx context.Context, id string, fields bookshelf.BookFields) (*bookshelf.Book, error)
	SetBookCompleteFn   func(ctx context.Context, id string, complete bool) (*bookshelf.Book, error)
	DeleteBookFn        func(ctx context.Context, id string) error
	SearchBooksFn       func(ctx context.Context, query string) ([]*bookshelf.Book, error)
	BooksFn             func(ctx context.Context) ([]*bookshelf.Book, error)
}

func (s *BookService) CreateBook(ctx context.Context, fields bookshelf.BookFields) (*bookshelf.Book, error) {
	return s.CreateBookFn(ctx, fields)
}

func (s *BookService) FindBookByID(ctx context.Context, id string) (*bookshelf.Book, error) {
	return s.FindBookByIDFn(ctx, id)
}

func (s *BookService) FindBookIndexByID(ctx context.Context, id string) (int, error) {
	return s.FindBookIndexByIDFn(ctx, id)
}

func (s *BookService) UpdateBook(ctx context.Context, id string, fields bookshelf.BookFields) (*bookshelf.Book, error) {
	return s.UpdateBookFn(ctx, id, fields)
}

func (s *BookService) SetBookComplete(ctx context.Context, id string, complete bool) (*bookshelf.Book, error) {
	return s.SetBookCompleteFn(ctx, id, complete)
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	return s.DeleteBookFn(ctx, id)
}

func (s *BookService) SearchBooks(ctx context.Context, query string) ([]*bookshelf.Book, error) {
	return s.SearchBooksFn(ctx, query)
}

func (s *BookService) Books(ctx context.Context) ([]*bookshelf.Book, error) {
	return s.BooksFn(ctx)
}
