package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "alice@campus.edu", "IIT Patna", "9876543210", "student", "test-secret", 10)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@campus.edu", claims.Email)
	assert.Equal(t, "IIT Patna", claims.InstituteName)
	assert.Equal(t, "9876543210", claims.Phone)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "campus-connect", claims.Issuer)
	assert.Equal(t, "alice@campus.edu", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, "old@campus.edu", "X", "", "admin", "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "a@campus.edu", "X", "", "admin", "test-secret", 10)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
