// Package appstate persists small key-value records that live outside the
// users table's consistency boundary: the login session snapshot and the
// installation id.
package appstate

import "context"

// Repository is a key-value store over the app_state table.
type Repository interface {
	// Get returns the value stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
