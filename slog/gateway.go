package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookshelf"
)

// Ensure LoggingGateway implements bookshelf.PersistenceGateway.
var _ bookshelf.PersistenceGateway = (*LoggingGateway)(nil)

// LoggingGateway wraps a PersistenceGateway with debug logging.
type LoggingGateway struct {
	next   bookshelf.PersistenceGateway
	logger *slog.Logger
}

// NewLoggingGateway creates a new LoggingGateway.
func NewLoggingGateway(next bookshelf.PersistenceGateway, logger *slog.Logger) *LoggingGateway {
	return &LoggingGateway{next: next, logger: logger}
}

// Save delegates to the wrapped gateway and logs the snapshot size.
func (g *LoggingGateway) Save(ctx context.Context, books []*bookshelf.Book) (err error) {
	defer func(begin time.Time) {
		g.logger.Info("collection save",
			"count", len(books),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Save(ctx, books)
}

// Load delegates to the wrapped gateway and logs the number of books read.
func (g *LoggingGateway) Load(ctx context.Context) (books []*bookshelf.Book, err error) {
	defer func(begin time.Time) {
		g.logger.Info("collection load",
			"count", len(books),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Load(ctx)
}

// Available delegates to the wrapped gateway and logs the answer.
func (g *LoggingGateway) Available(ctx context.Context) bool {
	ok := g.next.Available(ctx)
	g.logger.Info("storage availability", "available", ok)
	return ok
}
