package cli

import (
	"errors"

	"github.com/userdesk/userdesk/internal/common"
)

// failureMessage maps a domain error to the single message class the user
// sees: validation, conflict, bad credentials, not-found, or a generic
// failure for storage faults. No machine-readable detail leaks through.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return "Please fill in all fields."
	case errors.Is(err, common.ErrEmailTaken):
		return "This e-mail is already registered."
	case errors.Is(err, common.ErrUnauthorized):
		return "Invalid e-mail or password."
	case errors.Is(err, common.ErrNotFound):
		return "No user with that id."
	default:
		return "Something went wrong, please try again."
	}
}
