// Package token issues and verifies the signed bearer tokens used by the
// MADR API. Tokens are self-contained HMAC-signed claim sets; expiry is
// the only invalidation mechanism, there is no revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers malformed encoding, bad signature and expired
// timestamp alike. Callers must not distinguish these cases to the end
// user.
var ErrInvalidToken = errors.New("invalid token")

// Config carries the process-wide signing settings, loaded once at
// startup and passed in explicitly.
type Config struct {
	SecretKey     string
	Algorithm     string
	ExpireMinutes int
}

// Claims embeds the registered claim set; sub carries the user email,
// exp the expiry, jti a unique token id.
type Claims struct {
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

func NewService(cfg Config) (*Service, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("token secret key is required")
	}
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", cfg.Algorithm)
	}
	return &Service{
		secret:   []byte(cfg.SecretKey),
		method:   method,
		lifetime: time.Duration(cfg.ExpireMinutes) * time.Minute,
	}, nil
}

// Issue mints a signed token with the given subject and the configured
// lifetime.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify decodes the token and checks signature and expiry. Any failure
// yields ErrInvalidToken.
func (s *Service) Verify(raw string) (Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}

// Subject verifies the token and returns its subject claim. The subject
// may be empty; callers decide whether that is acceptable.
func (s *Service) Subject(raw string) (string, error) {
	claims, err := s.Verify(raw)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
