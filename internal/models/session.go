package models

// SessionSnapshot is the reduced identity persisted as "currently logged in".
// It lives outside the users table's consistency boundary: editing or
// deleting the underlying user does not touch an existing snapshot.
// The password digest is never part of it.
type SessionSnapshot struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
