// Package slog provides logging decorators for bookshelf services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookshelf"
)

// Ensure LoggingBlobStore implements the blob store interfaces.
var (
	_ bookshelf.BlobStore = (*LoggingBlobStore)(nil)
	_ bookshelf.Pinger    = (*LoggingBlobStore)(nil)
)

// LoggingBlobStore wraps a BlobStore with debug logging.
type LoggingBlobStore struct {
	next   bookshelf.BlobStore
	logger *slog.Logger
}

// NewLoggingBlobStore creates a new LoggingBlobStore.
func NewLoggingBlobStore(next bookshelf.BlobStore, logger *slog.Logger) *LoggingBlobStore {
	return &LoggingBlobStore{next: next, logger: logger}
}

// Get delegates to the wrapped store and logs the read.
func (s *LoggingBlobStore) Get(ctx context.Context, key string) (value string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("blob get",
			"key", key,
			"size", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, key)
}

// Set delegates to the wrapped store and logs the write.
func (s *LoggingBlobStore) Set(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("blob set",
			"key", key,
			"size", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, key, value)
}

// Ping delegates to the wrapped store if it can be pinged.
func (s *LoggingBlobStore) Ping(ctx context.Context) (err error) {
	p, ok := s.next.(bookshelf.Pinger)
	if !ok {
		return nil
	}
	defer func(begin time.Time) {
		s.logger.Info("blob ping", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return p.Ping(ctx)
}
