// Package cli is the interactive surface of userdesk: a small REPL over the
// user store and the login session. It renders results and maps domain
// errors to human-readable messages; all rules live in the services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/config"
	"github.com/userdesk/userdesk/internal/cryptox"
	"github.com/userdesk/userdesk/internal/installid"
	"github.com/userdesk/userdesk/internal/logging"
	"github.com/userdesk/userdesk/internal/models"
	"github.com/userdesk/userdesk/internal/repositories/appstate"
	"github.com/userdesk/userdesk/internal/repositories/users"
	"github.com/userdesk/userdesk/internal/services"
	"github.com/userdesk/userdesk/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the services together and holds the in-memory view of the
// current session.
type App struct {
	config  *config.Config
	users   *services.UserService
	session *services.SessionService
	current *models.SessionSnapshot
	reader  *bufio.Reader
	log     logging.Logger
	db      *sql.DB
}

// NewApp opens the database, applies migrations, and restores a previously
// persisted session if one exists. Storage initialization is the only
// unrecoverable failure; everything later degrades to messages.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath, cfg.BusyTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	stateRepo := appstate.NewSQLiteRepository(db)

	a := &App{
		config:  cfg,
		users:   services.NewUserService(users.NewSQLiteRepository(db), cryptox.NewSHA256Hasher(), log),
		session: services.NewSessionService(db, log),
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
		db:      db,
	}

	if id, err := installid.Get(ctx, stateRepo); err == nil {
		log.Debug(ctx, "installation id", "id", id)
	} else {
		log.Warn(ctx, "could not resolve installation id", "error", err)
	}

	// Resume: a stored snapshot gates straight into the logged-in commands.
	snap, err := a.session.GetCurrent(ctx)
	switch {
	case err == nil:
		a.current = snap
		if ts, err := a.session.GetLastLogin(ctx); err == nil {
			log.Debug(ctx, "restored session", "id", snap.ID, "last_login", ts)
		}
	case errors.Is(err, common.ErrNotFound):
		// nobody logged in
	default:
		log.Warn(ctx, "could not restore session", "error", err)
	}

	return a, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if a.current != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", a.current.Name))
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current.Email)
}
