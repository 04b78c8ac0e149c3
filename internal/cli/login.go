package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/models"
)

// Login authenticates and persists the session snapshot so the user stays
// logged in across restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter e-mail", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Authenticate(ctx, email, string(password))
	if err != nil {
		printlnFn(failureMessage(err))
		return err
	}

	if err := a.session.SetCurrent(ctx, user); err != nil {
		// Login still succeeds for this run; only the persisted snapshot
		// is missing.
		a.log.Warn(ctx, "could not persist session", "error", err)
	}
	a.current = &models.SessionSnapshot{ID: user.ID, Name: user.Name, Email: user.Email}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.ClearCurrent(ctx); err != nil {
		printlnFn(failureMessage(err))
		return err
	}
	a.current = nil
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the identity restored from the session snapshot. The
// snapshot may be stale: it is not refreshed when the user row changes.
func (a *App) Whoami(ctx context.Context) error {
	if a.current == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%d: %s <%s>", a.current.ID, a.current.Name, a.current.Email))
	return nil
}
