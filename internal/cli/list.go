package cli

import (
	"context"
	"fmt"
)

// List prints all registered users in insertion order.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	all, err := a.users.List(ctx)
	if err != nil {
		printlnFn(failureMessage(err))
		return err
	}

	if len(all) == 0 {
		printlnFn("No users registered.")
		return nil
	}
	for _, u := range all {
		printlnFn(fmt.Sprintf("%d: %s <%s>", u.ID, u.Name, u.Email))
	}
	return nil
}
