package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domainerrors "madr/contexts/identity-access/account-service/domain/errors"
	"madr/contexts/identity-access/account-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Tokens ports.Tokens
	Logger *slog.Logger
}

// Register creates a new account. Username and email are case-folded
// before the uniqueness check; the password is hashed before storage and
// never kept beyond request scope.
func (s Service) Register(ctx context.Context, username, email, password string) (ports.User, error) {
	username = fold(username)
	email = fold(email)
	if username == "" || email == "" || password == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}

	taken, err := s.Repo.ExistsUsernameOrEmail(ctx, username, email)
	if err != nil {
		return ports.User{}, err
	}
	if taken {
		return ports.User{}, domainerrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ports.User{}, err
	}

	// The store's unique constraint is the final authority; a racing
	// insert past the check above still comes back as ErrUserExists.
	user, err := s.Repo.Create(ctx, ports.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return ports.User{}, err
	}

	resolveLogger(s.Logger).Info("account registered",
		"event", "account_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return user, nil
}

// Login matches the submitted identifier case-folded against email or
// username and verifies the password. Failures are uniform; the caller
// never learns which check missed. On success a token with the user's
// stored email as subject is issued.
func (s Service) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.Repo.GetByIdentifier(ctx, fold(identifier))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domainerrors.ErrInvalidCredentials
	}

	raw, err := s.Tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("access token issued",
		"event", "access_token_issued",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return raw, nil
}

// Resolve turns a bearer token into the authenticated principal. A bad
// token, an absent subject claim and an unknown subject all fail the
// same way.
func (s Service) Resolve(ctx context.Context, raw string) (ports.User, error) {
	subject, err := s.Tokens.Subject(raw)
	if err != nil || subject == "" {
		return ports.User{}, domainerrors.ErrCredentialsUnusable
	}
	user, err := s.Repo.GetByEmail(ctx, subject)
	if err != nil {
		return ports.User{}, domainerrors.ErrCredentialsUnusable
	}
	return user, nil
}

// Update replaces the principal's own record. Any other target id is
// forbidden regardless of token validity.
func (s Service) Update(ctx context.Context, principal ports.User, targetID int64, username, email, password string) (ports.User, error) {
	if principal.ID != targetID {
		return ports.User{}, domainerrors.ErrChangeOtherUser
	}
	username = fold(username)
	email = fold(email)
	if username == "" || email == "" || password == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ports.User{}, err
	}

	user, err := s.Repo.Update(ctx, ports.User{
		ID:           targetID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return ports.User{}, err
	}

	resolveLogger(s.Logger).Info("account updated",
		"event", "account_updated",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return user, nil
}

// Delete removes the principal's own record; any other target id is
// forbidden.
func (s Service) Delete(ctx context.Context, principal ports.User, targetID int64) error {
	if principal.ID != targetID {
		return domainerrors.ErrDeleteOtherUser
	}
	if err := s.Repo.Delete(ctx, principal.ID); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("account deleted",
		"event", "account_deleted",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", principal.ID,
	)
	return nil
}

func fold(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
