// Package snapshot persists the whole book collection as a single JSON
// document in a blob store.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/bookshelf"
)

// DefaultKey is the blob store key the collection is stored under.
const DefaultKey = "book-shelf"

// Ensure Gateway implements bookshelf.PersistenceGateway at compile time.
var _ bookshelf.PersistenceGateway = (*Gateway)(nil)

// Gateway implements bookshelf.PersistenceGateway on top of a blob store.
// Every Save replaces the stored document; nothing is appended or merged.
type Gateway struct {
	store bookshelf.BlobStore
	key   string
}

// NewGateway creates a new Gateway storing the collection under key.
// An empty key means DefaultKey.
func NewGateway(store bookshelf.BlobStore, key string) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	return &Gateway{store: store, key: key}
}

// Key returns the blob store key used by the gateway.
func (g *Gateway) Key() string {
	return g.key
}

// Save encodes books and stores them under the gateway's key.
func (g *Gateway) Save(ctx context.Context, books []*bookshelf.Book) error {
	data, err := Encode(books)
	if err != nil {
		return err
	}
	if err := g.store.Set(ctx, g.key, data); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

// Load reads and decodes the stored collection. A missing key yields an
// empty collection.
func (g *Gateway) Load(ctx context.Context) ([]*bookshelf.Book, error) {
	raw, err := g.store.Get(ctx, g.key)
	if bookshelf.ErrorCode(err) == bookshelf.ENOTFOUND {
		return []*bookshelf.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}
	return Decode(raw)
}

// Available reports whether the underlying blob store can be used.
func (g *Gateway) Available(ctx context.Context) bool {
	if g.store == nil {
		return false
	}
	if p, ok := g.store.(bookshelf.Pinger); ok {
		return p.Ping(ctx) == nil
	}
	return true
}

// Encode serializes books as a JSON array. A nil slice encodes as "[]".
func Encode(books []*bookshelf.Book) (string, error) {
	if books == nil {
		books = []*bookshelf.Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return "", fmt.Errorf("failed to encode collection: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON array of books. The literal null decodes as an empty
// collection. Anything that is not a list of books with unique, non-empty
// IDs is reported as ECORRUPT.
func Decode(raw string) ([]*bookshelf.Book, error) {
	var books []*bookshelf.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		return nil, bookshelf.Errorf(bookshelf.ECORRUPT, "stored collection is not valid JSON: %v", err)
	}

	seen := make(map[string]struct{}, len(books))
	for i, b := range books {
		if b == nil {
			return nil, bookshelf.Errorf(bookshelf.ECORRUPT, "stored book %d is null", i)
		}
		if b.ID == "" {
			return nil, bookshelf.Errorf(bookshelf.ECORRUPT, "stored book %d has no id", i)
		}
		if _, ok := seen[b.ID]; ok {
			return nil, bookshelf.Errorf(bookshelf.ECORRUPT, "stored book id %q is duplicated", b.ID)
		}
		seen[b.ID] = struct{}{}
	}

	if books == nil {
		books = []*bookshelf.Book{}
	}
	return books, nil
}
