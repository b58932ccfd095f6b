// Package store implements the durable key-value persistence the
// reservation engine runs against.  Storage is four independent
// string-keyed slots holding JSON documents; a slot is always read and
// rewritten whole, never patched.  Three backends implement the slot
// access: an in-memory map for tests and development, Redis, and a
// MySQL key-value table.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable wraps backend failures so callers can distinguish
// "storage is down" from business rejections via errors.Is.
var ErrUnavailable = errors.New("store unavailable")

// KV is the minimal contract a backend must provide.  Get returns
// (nil, nil) when the key is absent; Set fully overwrites the value
// under the key.  Values are opaque JSON bytes to the backend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
