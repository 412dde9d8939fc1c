// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/config"
)

func testManager() *SessionManager {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-gateway"
	cfg.Auth.JWTSecret = "test-secret-at-least-32-characters!!"
	return NewSessionManager(cfg)
}

func TestSessionManager_RoundTrip(t *testing.T) {
	manager := testManager()

	token, err := manager.GenerateSessionToken("ident-1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := manager.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ident-1", claims.IdentityID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "identity:ident-1", claims.Subject)
}

func TestSessionManager_Rejections(t *testing.T) {
	manager := testManager()

	t.Run("expired token", func(t *testing.T) {
		token, err := manager.GenerateSessionToken("ident-1", "", -time.Minute)
		require.NoError(t, err)

		_, err = manager.ValidateSessionToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := testManager()
		other.config.Auth.JWTSecret = "some-other-secret-32-characters!!!!!"

		token, err := other.GenerateSessionToken("ident-1", "", time.Hour)
		require.NoError(t, err)

		_, err = manager.ValidateSessionToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.ValidateSessionToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("token without identity", func(t *testing.T) {
		token, err := manager.GenerateSessionToken("", "", time.Hour)
		require.NoError(t, err)

		_, err = manager.ValidateSessionToken(token)
		assert.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc123"))
}
