package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewService(Config{SecretKey: "test-secret", Algorithm: "HS256", ExpireMinutes: 30})
	require.NoError(t, err)

	raw, err := svc.Issue("teste@gmail.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "teste@gmail.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc, err := NewService(Config{SecretKey: "test-secret", Algorithm: "HS256", ExpireMinutes: -1})
	require.NoError(t, err)

	raw, err := svc.Issue("teste@gmail.com")
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := NewService(Config{SecretKey: "secret-a", Algorithm: "HS256", ExpireMinutes: 30})
	require.NoError(t, err)
	verifier, err := NewService(Config{SecretKey: "secret-b", Algorithm: "HS256", ExpireMinutes: 30})
	require.NoError(t, err)

	raw, err := issuer.Issue("teste@gmail.com")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc, err := NewService(Config{SecretKey: "test-secret", Algorithm: "HS256", ExpireMinutes: 30})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestSubject(t *testing.T) {
	svc, err := NewService(Config{SecretKey: "test-secret", Algorithm: "HS384", ExpireMinutes: 30})
	require.NoError(t, err)

	raw, err := svc.Issue("machado@madr.dev")
	require.NoError(t, err)

	subject, err := svc.Subject(raw)
	require.NoError(t, err)
	assert.Equal(t, "machado@madr.dev", subject)
}

func TestNewServiceRejectsBadConfig(t *testing.T) {
	_, err := NewService(Config{SecretKey: "", Algorithm: "HS256", ExpireMinutes: 30})
	assert.Error(t, err)

	_, err = NewService(Config{SecretKey: "test-secret", Algorithm: "XX999", ExpireMinutes: 30})
	assert.Error(t, err)

	// asymmetric methods need key material this service does not hold
	_, err = NewService(Config{SecretKey: "test-secret", Algorithm: "RS256", ExpireMinutes: 30})
	assert.Error(t, err)
}
