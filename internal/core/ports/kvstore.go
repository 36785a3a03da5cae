package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistence primitive underneath every repository: an opaque
// blob per fixed key, read in full and rewritten in full on every mutation.
// Backends: in-memory (default), redis, mongo.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
