package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateULID_UniqueAndSortable(t *testing.T) {
	a := GenerateULID()
	b := GenerateULID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestEditorToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateEditorToken(secret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, secret)
	require.NoError(t, err)
	assert.True(t, IsEditorClaims(claims))
	assert.NotEmpty(t, claims["sessionId"])
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateEditorToken("secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateEditorToken("secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, token, mustToken(t))
}

func mustToken(t *testing.T) string {
	t.Helper()
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	return token
}
