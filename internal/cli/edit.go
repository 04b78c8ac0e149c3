package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/services"
)

// Edit prompts for an id and new field values. An empty password keeps the
// current one.
func (a *App) Edit(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	idText, err := GetSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		printlnFn("Id must be a number.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter new e-mail", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter new password (leave empty to keep current)", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	newPassword := services.PasswordUnchanged
	if len(password) > 0 {
		newPassword = string(password)
	}

	if err := a.users.Update(ctx, id, name, email, newPassword); err != nil {
		printlnFn(failureMessage(err))
		return err
	}

	printlnFn("User updated.")
	return nil
}
