package services

import (
	"testing"
	"time"

	"github.com/careerconnect/careerconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", time.Hour)

	token, err := svc.IssueToken(&models.User{ID: 42})
	require.NoError(t, err)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", userID)
}

func TestAuthService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a", time.Hour)
	verifier := NewAuthService(nil, "secret-b", time.Hour)

	token, err := issuer.IssueToken(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", -time.Minute)

	token, err := svc.IssueToken(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", time.Hour)
	_, err := svc.VerifyToken("not-a-token")
	assert.Error(t, err)
}
