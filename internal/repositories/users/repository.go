// Package users persists user records in the local sqlite database.
package users

import (
	"context"

	"github.com/userdesk/userdesk/internal/models"
)

// Repository describes the persistence operations for user records.
type Repository interface {
	// Create inserts a new user and fills in the store-assigned id.
	// The unique index on email is the only duplicate arbiter; a taken
	// email yields common.ErrEmailTaken and no mutation.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetAll returns every user in insertion order. A fresh call re-reads.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByEmailAndDigest returns the user matching both values exactly,
	// or common.ErrNotFound. A wrong email and a wrong digest are
	// indistinguishable.
	GetByEmailAndDigest(ctx context.Context, email, digest string) (*models.User, error)

	// Update rewrites name, email and digest of the row with user.ID.
	// common.ErrEmailTaken when another user holds the email,
	// common.ErrNotFound when the id does not exist.
	Update(ctx context.Context, user *models.User) error

	// UpdateProfile rewrites name and email only, leaving the stored digest
	// untouched. Same errors as Update.
	UpdateProfile(ctx context.Context, id int64, name, email string) error

	// Delete removes the row with the given id. Deleting an absent id is
	// not an error.
	Delete(ctx context.Context, id int64) error
}
