// Package kvstore is the persistence port of the state engine: scoped
// key-value storage where every write replaces the whole container.
package kvstore

import "context"

// Store is the adapter the cart, favorites and order containers persist
// through. Get returns (nil, nil) for a missing key; Set overwrites the
// previous value unconditionally (last writer wins across sessions that
// share a backend).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
