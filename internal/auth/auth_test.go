package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	return NewService("test-secret", hash, time.Hour)
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Authenticate("correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateNoHashConfigured(t *testing.T) {
	svc := NewService("test-secret", "", time.Hour)

	_, err := svc.Authenticate("anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenBearerPrefix(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.GenerateToken()
	require.NoError(t, err)

	claims, err := svc.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewService("secret-a", "", time.Hour).GenerateToken()
	require.NoError(t, err)

	_, err = NewService("secret-b", "", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewService("test-secret", "", time.Nanosecond)
	token, err := svc.GenerateToken()
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
