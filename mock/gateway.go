package mock

import (
	"context"

	"github.com/fwojciec/bookshelf"
)

var _ bookshelf.PersistenceGateway = (*PersistenceGateway)(nil)

// PersistenceGateway is a mock implementation of bookshelf.PersistenceGateway.
type PersistenceGateway struct {
	SaveFn      func(ctx context.Context, books []*bookshelf.Book) error
	LoadFn      func(ctx context.Context) ([]*bookshelf.Book, error)
	AvailableFn func(ctx context.Context) bool
}

func (g *PersistenceGateway) Save(ctx context.Context, books []*bookshelf.Book) error {
	return g.SaveFn(ctx, books)
}

func (g *PersistenceGateway) Load(ctx context.Context) ([]*bookshelf.Book, error) {
	return g.LoadFn(ctx)
}

func (g *PersistenceGateway) Available(ctx context.Context) bool {
	return g.AvailableFn(ctx)
}
