// Package shelf implements the in-memory book collection and its
// snapshot-on-every-change persistence contract.
package shelf

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/fwojciec/bookshelf"
)

// Compile-time interface verification.
var _ bookshelf.BookService = (*Store)(nil)

// Store owns the authoritative, ordered collection of books.
//
// Every successful mutation saves the full collection through the gateway
// before returning and then notifies observers registered with OnChanged
// and OnPersisted. Operations on an unknown ID return ENOTFOUND and have
// no side effects.
//
// Store is safe for concurrent use. Observers are called synchronously,
// after the store's lock has been released.
type Store struct {
	// Logger receives debug and warning records. Defaults to discarding.
	Logger *slog.Logger

	// IDs generates book IDs. Replace before first use to control IDs.
	IDs *IDGenerator

	gateway bookshelf.PersistenceGateway

	mu      sync.Mutex
	books   []*bookshelf.Book
	durable bool
	warned  bool

	changed   []func()
	persisted []func()
	warnings  []func(error)
}

// NewStore returns an empty Store that persists through gateway.
// A nil gateway yields a store that lives in memory only.
func NewStore(gateway bookshelf.PersistenceGateway) *Store {
	return &Store{
		Logger:  slog.New(slog.DiscardHandler),
		IDs:     NewIDGenerator(),
		gateway: gateway,
		durable: gateway != nil,
	}
}

// OnChanged registers fn to be called after every successful mutation and
// after Load.
func (s *Store) OnChanged(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed = append(s.changed, fn)
}

// OnPersisted registers fn to be called after every successful save.
func (s *Store) OnPersisted(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persisted = append(s.persisted, fn)
}

// OnWarning registers fn to receive advisory errors: unavailable storage
// (reported once), corrupt snapshots and failed saves.
func (s *Store) OnWarning(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, fn)
}

// Persistent reports whether mutations are currently saved to durable storage.
func (s *Store) Persistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.durable
}

// Load replaces the collection with the stored snapshot. It is meant to be
// called once, at startup, before the collection is presented.
//
// When storage is unavailable the store continues in memory only and a
// warning is emitted. When the snapshot is corrupt the collection is left
// empty, a warning is emitted and the ECORRUPT error is returned; the
// stored value is not touched until the next successful save.
func (s *Store) Load(ctx context.Context) error {
	n := &notice{changed: true}
	defer func() { s.notify(n) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = nil
	if !s.durable {
		return nil
	}
	if !s.gateway.Available(ctx) {
		s.degrade(n, bookshelf.Errorf(bookshelf.EUNAVAILABLE, "storage is not available, changes will not be saved"))
		return nil
	}

	books, err := s.gateway.Load(ctx)
	if bookshelf.ErrorCode(err) == bookshelf.ECORRUPT {
		s.Logger.Warn("stored collection is corrupt, starting empty", "err", err)
		n.warnings = append(n.warnings, err)
		return err
	} else if err != nil {
		s.degrade(n, bookshelf.Errorf(bookshelf.EUNAVAILABLE, "cannot read storage, changes will not be saved: %v", err))
		return nil
	}

	for _, b := range books {
		s.IDs.Observe(b.ID)
		s.books = append(s.books, b.Clone())
	}
	s.Logger.Debug("collection loaded", "count", len(s.books))
	return nil
}

// CreateBook assigns a fresh ID and appends a new book to the collection.
func (s *Store) CreateBook(ctx context.Context, fields bookshelf.BookFields) (*bookshelf.Book, error) {
	n := &notice{changed: true}
	defer func() { s.notify(n) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	book := &bookshelf.Book{
		ID: s.IDs.Next(func(id string) bool { return s.indexOf(id) != -1 }),
	}
	book.Apply(fields)
	s.books = append(s.books, book)

	s.flush(ctx, n)
	return book.Clone(), nil
}

// FindBookByID retrieves a book by ID.
func (s *Store) FindBookByID(_ context.Context, id string) (*bookshelf.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil, notFound(id)
	}
	return s.books[i].Clone(), nil
}

// FindBookIndexByID returns the position of a book in the collection.
func (s *Store) FindBookIndexByID(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return -1, notFound(id)
	}
	return i, nil
}

// UpdateBook replaces all user-editable fields of a book in place.
func (s *Store) UpdateBook(ctx context.Context, id string, fields bookshelf.BookFields) (*bookshelf.Book, error) {
	return s.mutate(ctx, id, func(b *bookshelf.Book) { b.Apply(fields) })
}

// SetBookComplete sets the read status of a book.
func (s *Store) SetBookComplete(ctx context.Context, id string, complete bool) (*bookshelf.Book, error) {
	return s.mutate(ctx, id, func(b *bookshelf.Book) { b.IsComplete = complete })
}

// MarkBookRead marks a book as read.
func (s *Store) MarkBookRead(ctx context.Context, id string) (*bookshelf.Book, error) {
	return s.SetBookComplete(ctx, id, true)
}

// MarkBookUnread marks a book as not yet read.
func (s *Store) MarkBookUnread(ctx context.Context, id string) (*bookshelf.Book, error) {
	return s.SetBookComplete(ctx, id, false)
}

// DeleteBook removes a book, keeping the order of the remaining books.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	n := &notice{}
	defer func() { s.notify(n) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return notFound(id)
	}
	s.books = slices.Delete(s.books, i, i+1)
	n.changed = true

	s.flush(ctx, n)
	return nil
}

// SearchBooks returns books whose title equals query, ignoring case,
// in collection order.
func (s *Store) SearchBooks(_ context.Context, query string) ([]*bookshelf.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []*bookshelf.Book{}
	for _, b := range s.books {
		if b.TitleMatches(query) {
			result = append(result, b.Clone())
		}
	}
	return result, nil
}

// Books returns a copy of the whole collection in insertion order.
func (s *Store) Books(_ context.Context) ([]*bookshelf.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

func (s *Store) mutate(ctx context.Context, id string, fn func(*bookshelf.Book)) (*bookshelf.Book, error) {
	n := &notice{}
	defer func() { s.notify(n) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil, notFound(id)
	}
	fn(s.books[i])
	n.changed = true

	s.flush(ctx, n)
	return s.books[i].Clone(), nil
}

// flush saves the collection. Must be called with s.mu held.
// A failed save never rolls back the in-memory change.
func (s *Store) flush(ctx context.Context, n *notice) {
	if !s.durable {
		return
	}

	err := s.gateway.Save(ctx, s.snapshot())
	switch {
	case err == nil:
		n.persisted = true
		s.Logger.Debug("collection saved", "count", len(s.books))
	case bookshelf.ErrorCode(err) == bookshelf.EUNAVAILABLE:
		s.degrade(n, err)
	default:
		s.Logger.Warn("failed to save collection", "err", err)
		n.warnings = append(n.warnings, err)
	}
}

// degrade switches the store to memory-only mode and warns once.
// Must be called with s.mu held.
func (s *Store) degrade(n *notice, err error) {
	s.durable = false
	if s.warned {
		return
	}
	s.warned = true
	s.Logger.Warn("continuing without durable storage", "err", err)
	n.warnings = append(n.warnings, err)
}

// indexOf returns the position of id, or -1. Must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.books, func(b *bookshelf.Book) bool { return b.ID == id })
}

// snapshot copies the collection. Must be called with s.mu held.
func (s *Store) snapshot() []*bookshelf.Book {
	books := make([]*bookshelf.Book, len(s.books))
	for i, b := range s.books {
		books[i] = b.Clone()
	}
	return books
}

// notice collects what observers must hear about once the lock is released.
type notice struct {
	changed   bool
	persisted bool
	warnings  []error
}

func (s *Store) notify(n *notice) {
	s.mu.Lock()
	changed := slices.Clone(s.changed)
	persisted := slices.Clone(s.persisted)
	warnings := slices.Clone(s.warnings)
	s.mu.Unlock()

	for _, err := range n.warnings {
		for _, fn := range warnings {
			fn(err)
		}
	}
	if n.changed {
		for _, fn := range changed {
			fn()
		}
	}
	if n.persisted {
		for _, fn := range persisted {
			fn()
		}
	}
}

func notFound(id string) error {
	return bookshelf.Errorf(bookshelf.ENOTFOUND, "book %q not found", id)
}
