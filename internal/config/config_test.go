// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Storefront Gateway", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:9000/api", cfg.Shop.BaseURL)
	assert.Equal(t, "http://localhost:4433", cfg.Auth.ProviderBaseURL)
	assert.Equal(t, 60*time.Second, cfg.Cache.CatalogTTL)
	assert.Equal(t, 15*time.Second, cfg.Cache.AvailabilityTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SHOP_API_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Shop.Timeout)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = "too-short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing shop base url", func(t *testing.T) {
		cfg := base()
		cfg.Shop.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing auth provider url", func(t *testing.T) {
		cfg := base()
		cfg.Auth.ProviderBaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing redis host", func(t *testing.T) {
		cfg := base()
		cfg.Redis.Host = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Host = "redis.internal"
	cfg.Redis.Port = "6380"
	assert.Equal(t, "redis.internal:6380", cfg.GetRedisAddr())
}
