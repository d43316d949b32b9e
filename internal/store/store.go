// Package store holds the key-value storage each browser scope persists its
// session and cart state to.
package store

import (
	"context" // Context for backend calls
	"errors"  // Sentinel errors
)

// Keys written by the session and cart managers.
const (
	KeyEmail      = "email"      // Stored credential email
	KeyPassword   = "password"   // Stored credential password
	KeyIsLoggedIn = "isLoggedIn" // "true" while the session flag is set, absent otherwise
	KeyCart       = "cart"       // JSON array of cart items
)

// ErrUnknownBackend is returned by Open for an unsupported STORE_BACKEND value
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is a string key-value store bound to one browser scope.
// Get reports ok=false for a missing key; Remove of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Backend hands out Stores for browser scopes.
type Backend interface {
	For(scope string) Store
	Ping(ctx context.Context) error
}
