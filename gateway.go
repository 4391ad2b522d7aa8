package bookshelf

import "context"

// PersistenceGateway snapshots the whole collection to durable storage
// and restores it at startup.
type PersistenceGateway interface {
	// Save replaces the stored snapshot with books.
	Save(ctx context.Context, books []*Book) error

	// Load returns the stored snapshot, or an empty slice if none exists.
	// Returns ECORRUPT if the stored snapshot cannot be decoded; the stored
	// value is left as it is.
	Load(ctx context.Context) ([]*Book, error)

	// Available reports whether durable storage is usable at all.
	Available(ctx context.Context) bool
}
