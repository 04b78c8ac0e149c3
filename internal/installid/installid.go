// Package installid assigns this installation a stable random identifier on
// first launch. The id goes into startup logs so support can tell two
// installations of the same database layout apart.
package installid

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/repositories/appstate"
)

const key = "install_id"

// Get returns the installation id, generating and persisting a fresh UUID
// the first time it is asked for.
func Get(ctx context.Context, repo appstate.Repository) (string, error) {
	v, err := repo.Get(ctx, key)
	if err == nil {
		return string(v), nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", err
	}

	id := uuid.NewString()
	if err := repo.Set(ctx, key, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
