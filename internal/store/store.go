// Package store implements the string-keyed persistent map the data core
// relies on for durability. Values are whole JSON documents: every mutating
// operation upstream reads the full value, mutates it in memory, and writes
// it back. Two processes racing on the same key are last-writer-wins; earlier
// concurrent changes are silently discarded. This is inherent to the chosen
// layout and is documented rather than worked around.
package store

import "context"

// Store is the key-value capability handed to the account directory and the
// post ledger. Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
