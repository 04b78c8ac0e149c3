package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/dbx"
	"github.com/userdesk/userdesk/internal/logging"
	"github.com/userdesk/userdesk/internal/models"
	"github.com/userdesk/userdesk/internal/repositories/appstate"
)

const (
	// currentUserKey is the app_state key holding the session snapshot.
	currentUserKey = "current_user"
	// lastLoginKey holds the RFC3339 time of the most recent login.
	lastLoginKey = "last_login"
)

// SessionService persists the "currently logged in" identity across
// restarts. It is an injected dependency rather than ambient state.
//
// The snapshot is independent of the users table: editing or deleting the
// underlying user leaves an existing snapshot untouched. Callers that care
// about staleness must re-check against the user store themselves.
type SessionService struct {
	db  *sql.DB
	log logging.Logger
}

// NewSessionService constructs a SessionService over the given database.
func NewSessionService(db *sql.DB, log logging.Logger) *SessionService {
	return &SessionService{db: db, log: log.With("component", "session")}
}

func (s *SessionService) getStateRepo(db dbx.DBTX) appstate.Repository {
	return appstate.NewSQLiteRepository(db)
}

// SetCurrent stores a reduced snapshot of user (id, name, email) as the
// logged-in identity, together with the login time, in one transaction.
// The password digest is never persisted here.
func (s *SessionService) SetCurrent(ctx context.Context, user *models.User) error {
	snap := models.SessionSnapshot{ID: user.ID, Name: user.Name, Email: user.Email}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getStateRepo(tx)
		if err := repo.Set(ctx, currentUserKey, data); err != nil {
			return err
		}
		return repo.Set(ctx, lastLoginKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		s.log.Error(ctx, "session write failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "session opened", "id", snap.ID)
	return nil
}

// GetCurrent returns the stored snapshot, or ErrNotFound when nobody is
// logged in.
func (s *SessionService) GetCurrent(ctx context.Context) (*models.SessionSnapshot, error) {
	data, err := s.getStateRepo(s.db).Get(ctx, currentUserKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.log.Error(ctx, "session read failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return &snap, nil
}

// GetLastLogin returns the time of the most recent successful login, or
// ErrNotFound when nobody has ever logged in.
func (s *SessionService) GetLastLogin(ctx context.Context) (time.Time, error) {
	data, err := s.getStateRepo(s.db).Get(ctx, lastLoginKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return time.Time{}, common.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	ts, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return ts, nil
}

// ClearCurrent removes the stored snapshot (logout). The last-login time is
// kept. Clearing an absent session is a no-op.
func (s *SessionService) ClearCurrent(ctx context.Context) error {
	if err := s.getStateRepo(s.db).Delete(ctx, currentUserKey); err != nil {
		s.log.Error(ctx, "session clear failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "session closed")
	return nil
}
