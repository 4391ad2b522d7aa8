package bookshelf

import (
	"context"
	"time"
)

// BlobStore is a durable key-value store holding opaque string values.
type BlobStore interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if nothing is stored under key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Pinger is implemented by blob stores that can report whether they are
// usable in the current environment.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BlobInfo describes a stored value without its content.
type BlobInfo struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	Hash      string    `json:"hash"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlobInspector is implemented by blob stores that can describe stored values.
type BlobInspector interface {
	// Stat returns metadata about the value stored under key.
	// Returns ENOTFOUND if nothing is stored under key.
	Stat(ctx context.Context, key string) (*BlobInfo, error)
}
