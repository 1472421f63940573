package errors

import "errors"

// Error texts double as the fixed response messages surfaced to callers.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNovelistExists   = errors.New("Novelist already exists")
	ErrNovelistNotFound = errors.New("Novelist id not found")
)
