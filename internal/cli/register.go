package cli

import (
	"context"
	"os"

	"github.com/userdesk/userdesk/internal/common"
)

// Register prompts for name, email and password and creates a new account.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter e-mail", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.users.Register(ctx, name, email, string(password)); err != nil {
		printlnFn(failureMessage(err))
		return err
	}

	printlnFn("Registered! You can now login.")
	return nil
}
