package persistence

import "context"

// KeyValueStore is the persistence adapter contract: a flat, device-local
// key-value space holding JSON-encoded records. The session and card stores
// keep their canonical copy here under fixed keys.
//
// Possible errors:
// - ErrKeyNotFound: from Get when the key is absent
type KeyValueStore interface {
	// Get retrieves the raw value stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources
	Close() error
}
