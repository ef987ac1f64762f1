package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
)

const testSecret = "test-secret-key-needs-32-characters!"

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewTokenManager(testSecret, 15)

	token, err := manager.GenerateAccessToken(7, "jo@example.com", domain.UserRoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, domain.UserRoleUser, claims.Role)
	assert.Equal(t, "tool-rental-system", claims.Issuer)
	assert.Equal(t, "7", claims.Subject)
}

func TestValidateAdminToken(t *testing.T) {
	manager := NewTokenManager(testSecret, 15)

	token, err := manager.GenerateAccessToken(0, "admin@example.com", domain.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 0, claims.UserID)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewTokenManager(testSecret, -1)

	token, err := manager.GenerateAccessToken(1, "jo@example.com", domain.UserRoleUser)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, 15).GenerateAccessToken(1, "jo@example.com", domain.UserRoleUser)
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-also-32-chars-long!!!", 15).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewTokenManager(testSecret, 15)

	for _, tokenString := range []string{"", "not.a.jwt", "abc"} {
		_, err := manager.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
