package domain

import "errors"

// Sentinel error kinds the API layer can distinguish with errors.Is.
// Everything else that crosses a port is treated as an internal failure.
var (
	// ErrNotFound marks operations referencing a nonexistent guest, leg or car.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks missing or malformed required fields,
	// e.g. a guest created with an empty leg list.
	ErrValidation = errors.New("invalid input")
)
