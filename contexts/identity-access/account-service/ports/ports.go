package ports

import "context"

// User is the credential record. Username and Email are stored
// case-folded (trimmed, lower-cased); uniqueness is enforced on the
// folded values.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

// Repository is the credential store. Implementations map uniqueness
// violations to the domain conflict errors so that racing creates still
// surface as conflicts.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByIdentifier(ctx context.Context, identifier string) (User, error)
	ExistsUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// Tokens issues and verifies the bearer tokens carried on protected
// requests. Subject returns the subject claim of a valid token.
type Tokens interface {
	Issue(subject string) (string, error)
	Subject(raw string) (string, error)
}
