package cli

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// Delete prompts for an id, confirms, and removes the user. Deleting an
// absent id is reported as success, matching the store's idempotent delete.
func (a *App) Delete(ctx context.Context) error {
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

	answer, err := GetSimpleText(a.reader, "Delete this user? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.users.Delete(ctx, id); err != nil {
		printlnFn(failureMessage(err))
		return err
	}

	printlnFn("User deleted.")
	return nil
}
