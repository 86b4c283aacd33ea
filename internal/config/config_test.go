package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "LISTEN_ADDR", "LOG_LEVEL", "JWT_SECRET",
		"DEFAULT_ADMIN_USERNAME", "DEFAULT_ADMIN_PASSWORD", "RECAPTCHA_SECRET_KEY",
	} {
		t.Setenv(key, "") // registers restoration
		os.Unsetenv(key)
	}
}

func TestLoadDevelopmentFallbacks(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Production())
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.GreaterOrEqual(t, len(cfg.JWTSecret), MinSecretLen)

	// ephemeral secrets are fresh per load
	again, err := Load()
	require.NoError(t, err)
	assert.NotEqual(t, cfg.JWTSecret, again.JWTSecret)
}

func TestLoadProduction(t *testing.T) {
	setValid := func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("DEFAULT_ADMIN_USERNAME", "prabhat")
		t.Setenv("DEFAULT_ADMIN_PASSWORD", "a-long-stage-password")
		t.Setenv("RECAPTCHA_SECRET_KEY", "recaptcha-secret")
	}

	t.Run("valid", func(t *testing.T) {
		setValid(t)
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Production())
	})

	t.Run("missing everything", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "DEFAULT_ADMIN_USERNAME")
		assert.Contains(t, err.Error(), "DEFAULT_ADMIN_PASSWORD")
		assert.Contains(t, err.Error(), "RECAPTCHA_SECRET_KEY")
	})

	t.Run("short secret", func(t *testing.T) {
		setValid(t)
		t.Setenv("JWT_SECRET", "too-short")
		_, err := Load()
		require.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("placeholder secret", func(t *testing.T) {
		setValid(t)
		t.Setenv("JWT_SECRET", "please-change-this-secret-before-deploying")
		_, err := Load()
		require.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("weak admin password", func(t *testing.T) {
		setValid(t)
		t.Setenv("DEFAULT_ADMIN_PASSWORD", "admin123")
		_, err := Load()
		require.ErrorContains(t, err, "DEFAULT_ADMIN_PASSWORD")
	})

	t.Run("short admin password", func(t *testing.T) {
		setValid(t)
		t.Setenv("DEFAULT_ADMIN_PASSWORD", "elevenchars")
		_, err := Load()
		require.ErrorContains(t, err, "DEFAULT_ADMIN_PASSWORD")
	})
}
