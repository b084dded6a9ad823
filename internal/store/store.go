// Package store provides the durable key-value persistence the cart
// component uses to keep its cart identifier across sessions.
package store

import "errors"

// ErrNotFound indicates the key has no persisted value.
var ErrNotFound = errors.New("key not found")
