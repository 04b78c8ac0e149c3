// Package models defines the data records persisted by userdesk.
package models

// User is one registered account in the users table.
type User struct {
	// ID is assigned by the store on creation and never changes.
	ID int64

	// Name is the display name. Required.
	Name string

	// Email is required and unique across all users. Compared literally,
	// no case normalization.
	Email string

	// PasswordDigest is the hex digest of the password, never the plaintext.
	// Non-empty for every persisted user.
	PasswordDigest string
}
