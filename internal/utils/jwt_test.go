package utils

import (
	"testing"

	"ledgr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := &models.UserClaims{
		UserID:       42,
		Email:        "alice@example.com",
		Role:         "user",
		Permissions:  models.GetDefaultPermissions("user"),
		TokenVersion: 3,
	}

	access, refresh, err := GenerateTokens(claims)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	_, parsed, err := ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
	assert.Equal(t, "user", parsed.Role)
	assert.Equal(t, 3, parsed.TokenVersion)
	assert.True(t, parsed.HasPermission(models.PermissionWalletWrite))
	assert.False(t, parsed.IsAdmin())
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, _, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	access, _, err := GenerateTokens(&models.UserClaims{UserID: 1, TokenVersion: 1})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, _, err = ParseToken(access)
	assert.Error(t, err)
}

func TestGenerateTokensRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateTokens(&models.UserClaims{UserID: 1})
	assert.Error(t, err)
}
