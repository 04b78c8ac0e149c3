// Package common defines shared sentinel errors and small utilities used
// across userdesk layers. Callers should match the errors with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Service-level errors. ErrStorage tags engine failures so callers can
	// tell "no data" apart from "could not read data".
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrStorage      = errors.New("storage failure")
)
