package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "portfolio.db")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, int64(5*1024*1024), cfg.UploadMaxBytes)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LoginWindow)
	assert.Equal(t, "admin_token", cfg.CookieName)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestFromEnv_ParsesOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "portfolio.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://me.dev, ,https://admin.me.dev ")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://me.dev", "https://admin.me.dev"}, cfg.CORSAllowedOrigins)
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("DATABASE_URL", "portfolio.db")
	t.Setenv("LOGIN_WINDOW", "soon")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGIN_WINDOW")
}

func TestFromEnv_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("COOKIE_SECURE", "true")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromEnv_SameSiteNoneNeedsSecure(t *testing.T) {
	t.Setenv("DATABASE_URL", "portfolio.db")
	t.Setenv("COOKIE_SAMESITE", "None")
	t.Setenv("COOKIE_SECURE", "false")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COOKIE_SECURE")
}
