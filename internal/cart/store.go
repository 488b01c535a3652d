package cart

import (
	"context"
	"errors"
)

// ErrCorruptCart marks persisted cart data that exists but cannot be
// decoded. A missing cart is not an error; Load returns an empty cart.
var ErrCorruptCart = errors.New("persisted cart data is corrupt")

// SessionStore persists carts keyed by an opaque session key. It is the only
// place that knows the wire representation of a cart.
//
// Writes are last-write-wins. Concurrent requests for the same session can
// lose updates in the load-mutate-save window; callers must not rely on
// same-session parallelism.
type SessionStore interface {
	Load(ctx context.Context, sessionKey string) (*Cart, error)
	Save(ctx context.Context, sessionKey string, c *Cart) error
	Delete(ctx context.Context, sessionKey string) error
}
