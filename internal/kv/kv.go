// Package kv defines the durable key-value contract the state stores persist through.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing was ever saved under a key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable key-value store holding serialized snapshots.
type Store interface {
	// Load returns the bytes saved under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the bytes under key.
	Save(ctx context.Context, key string, data []byte) error
}
