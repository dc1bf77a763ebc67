package store

import "context"

// KV is the key-value storage collaborator the engine persists through.
// It backs both the graph snapshot and the strategy cache. Implementations
// must treat Set as a full overwrite of the key's value and must report a
// missing key as found=false, not as an error.
type KV interface {
	// Get returns the value stored at key, or found=false if absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value at key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
