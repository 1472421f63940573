package errors

import "errors"

// Error texts double as the fixed response messages surfaced to callers.
var (
	ErrInvalidRequest = errors.New("invalid request")

	ErrUserExists         = errors.New("Username or Email already exist")
	ErrUserUpdateConflict = errors.New("Username or email already exists")
	ErrUserNotFound       = errors.New("User not found")

	// Login and resolver failures stay uniform so callers cannot tell
	// which check failed.
	ErrInvalidCredentials  = errors.New("User or credentials invalid")
	ErrCredentialsUnusable = errors.New("Could not validate credentials")
	ErrChangeOtherUser     = errors.New("You are not allowed to change this user")
	ErrDeleteOtherUser     = errors.New("You are not allowed to delete this user")
)
