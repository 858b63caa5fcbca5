package services

import (
	"testing"
	"time"

	"github.com/pageforge/pageforge-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func withAuthConfig(t *testing.T, editorPassword string) {
	t.Helper()
	prevPassword, prevSecret, prevLifetime := config.EditorPassword, config.JWTSecret, config.TokenLifetime
	config.EditorPassword = editorPassword
	config.JWTSecret = "test-secret"
	config.TokenLifetime = time.Hour
	t.Cleanup(func() {
		config.EditorPassword, config.JWTSecret, config.TokenLifetime = prevPassword, prevSecret, prevLifetime
	})
}

func TestAuthService_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	withAuthConfig(t, string(hash))

	svc := NewAuthService(quietLogger(t))

	result := svc.AuthenticateEditor("s3cret")
	require.True(t, result.Success)
	assert.Equal(t, "editor", result.Role)
	assert.NotEmpty(t, result.Token)

	assert.True(t, svc.ValidateEditorToken(result.Token))
}

func TestAuthService_PlaintextFallback(t *testing.T) {
	withAuthConfig(t, "plain-password")

	svc := NewAuthService(quietLogger(t))

	result := svc.AuthenticateEditor("plain-password")
	assert.True(t, result.Success)

	result = svc.AuthenticateEditor("wrong")
	assert.False(t, result.Success)
	assert.Empty(t, result.Token)
}

func TestAuthService_UnconfiguredPassword(t *testing.T) {
	withAuthConfig(t, "")

	svc := NewAuthService(quietLogger(t))

	result := svc.AuthenticateEditor("anything")
	assert.False(t, result.Success)
}

func TestAuthService_ValidateRejectsGarbage(t *testing.T) {
	withAuthConfig(t, "pw")

	svc := NewAuthService(quietLogger(t))
	assert.False(t, svc.ValidateEditorToken(""))
	assert.False(t, svc.ValidateEditorToken("not-a-jwt"))
}
