// Package services implements the application-facing contract of userdesk:
// user CRUD plus the persisted login session.
//
// Domain failures come back as sentinel errors from the common package:
// ErrValidation for empty required fields, ErrEmailTaken for duplicate
// emails, ErrUnauthorized for failed logins, ErrNotFound for missing
// records, and ErrStorage when the engine itself failed. Callers can
// therefore tell "no users" apart from "could not read users".
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/cryptox"
	"github.com/userdesk/userdesk/internal/logging"
	"github.com/userdesk/userdesk/internal/models"
	"github.com/userdesk/userdesk/internal/repositories/users"
)

// PasswordUnchanged is the reserved password value telling Update to keep
// the stored digest. Any other value, including the empty string, is hashed
// and replaces it.
const PasswordUnchanged = "no-change"

type registrationInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type profileInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// UserService owns registration, authentication, listing, editing and
// deletion of user records.
type UserService struct {
	repo     users.Repository
	hasher   cryptox.Hasher
	validate *validator.Validate
	log      logging.Logger
}

// NewUserService constructs a UserService over the given repository and
// hasher.
func NewUserService(repo users.Repository, hasher cryptox.Hasher, log logging.Logger) *UserService {
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		validate: validator.New(),
		log:      log.With("component", "users"),
	}
}

// Register creates a new user. All three fields are required; the password
// is hashed before it reaches the store.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	in := registrationInput{Name: name, Email: email, Password: password}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	user := &models.User{Name: name, Email: email, PasswordDigest: s.hasher.Hash(password)}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		s.log.Error(ctx, "user insert failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "user registered", "id", created.ID, "email", created.Email)
	return created, nil
}

// List returns all users in insertion order. An engine failure surfaces as
// ErrStorage instead of an empty list.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "user listing failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return all, nil
}

// Authenticate verifies email and password. A wrong email and a wrong
// password are indistinguishable: both yield ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	digest := s.hasher.Hash(password)

	user, err := s.repo.GetByEmailAndDigest(ctx, email, digest)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		s.log.Error(ctx, "credential lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	// The row already matched on digest equality; re-check in constant time.
	if !cryptox.EqualDigests(user.PasswordDigest, digest) {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

// Update rewrites name and email of the user with the given id. When
// password is PasswordUnchanged the stored digest stays as it is, otherwise
// the new password is hashed and replaces it. Name and email are always
// rewritten, even when unchanged.
func (s *UserService) Update(ctx context.Context, id int64, name, email, password string) error {
	in := profileInput{Name: name, Email: email}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	var err error
	if password == PasswordUnchanged {
		err = s.repo.UpdateProfile(ctx, id, name, email)
	} else {
		user := &models.User{ID: id, Name: name, Email: email, PasswordDigest: s.hasher.Hash(password)}
		err = s.repo.Update(ctx, user)
	}

	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrNotFound) {
			return err
		}
		s.log.Error(ctx, "user update failed", "id", id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "user updated", "id", id)
	return nil
}

// Delete removes the user with the given id. Deleting an absent id is a
// successful no-op.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error(ctx, "user delete failed", "id", id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}
