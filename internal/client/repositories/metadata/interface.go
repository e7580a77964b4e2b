// Package metadata stores the client's local key/value entries (session
// token, cached profile). It plays the part of the browser's per-origin
// storage: no namespacing beyond key names, last writer wins.
package metadata

import (
	"context"
)

// Repository is a flat key/value store. Get of a missing key returns
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
