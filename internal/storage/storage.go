// Package storage provides the persistent key-value adapter backing the
// transaction ledger. The whole collection lives under a single key and is
// rewritten wholesale on every mutation.
package storage

import "context"

// TransactionsKey is the key under which the serialized collection is stored.
const TransactionsKey = "transactions"

// Adapter is a minimal persistent key-value store.
type Adapter interface {
	// Get returns the value for key. The second return is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}
