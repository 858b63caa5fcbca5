package services

import (
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/security"
	"github.com/pageforge/pageforge-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles editor authentication and JWT validation
type AuthService struct {
	logger *logging.ChanneledLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{logger: logger}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AuthenticateEditor validates the editor password and issues a JWT
func (a *AuthService) AuthenticateEditor(password string) *AuthResult {
	if config.EditorPassword == "" {
		return &AuthResult{Success: false, Error: "Editor access is not configured"}
	}

	valid := bcrypt.CompareHashAndPassword([]byte(config.EditorPassword), []byte(password)) == nil
	// Fallback for plaintext passwords during transition/testing
	if !valid {
		valid = password == config.EditorPassword
	}

	if !valid {
		a.logger.Auth().Warn("Editor authentication failed")
		return &AuthResult{Success: false, Error: "Invalid credentials"}
	}

	token, err := security.GenerateEditorToken(config.JWTSecret, config.TokenLifetime)
	if err != nil {
		a.logger.Auth().Error("Token generation failed", "error", err)
		return &AuthResult{Success: false, Error: "Token generation failed"}
	}

	a.logger.LogAuthOperation("login", true, map[string]any{"role": "editor"})
	return &AuthResult{Token: token, Role: "editor", Success: true}
}

// ValidateEditorToken checks that a token is valid and carries the editor role
func (a *AuthService) ValidateEditorToken(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
	if err != nil {
		return false
	}
	return security.IsEditorClaims(claims)
}
