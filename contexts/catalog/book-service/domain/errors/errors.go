package errors

import "errors"

// Error texts double as the fixed response messages surfaced to callers.
// A foreign-key violation surfaces as a conflict, not a distinct
// not-found.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrBookExists        = errors.New("Book already created")
	ErrBookNotFound      = errors.New("Book id was not found")
	ErrNovelistIDInvalid = errors.New("Novelist id is invalid")
)
