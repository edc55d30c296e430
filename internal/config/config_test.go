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

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3002, cfg.Server.Port)
	assert.Equal(t, "moltmail.clawtism.com", cfg.Mail.Domain)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Database.ConnIdleTime)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MOLTMAIL_SERVER_PORT", "8080")
	t.Setenv("MOLTMAIL_MAIL_DOMAIN", "Mail.Example.COM")
	t.Setenv("MOLTMAIL_DATABASE_DSN", "postgres://localhost:5432/moltmail")
	t.Setenv("MOLTMAIL_DATABASE_MAX_CONNS", "5")
	t.Setenv("MOLTMAIL_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MOLTMAIL_LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mail.example.com", cfg.Mail.Domain)
	assert.Equal(t, "postgres://localhost:5432/moltmail", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Database.MaxConns)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_InvalidDurationsFallBack(t *testing.T) {
	t.Setenv("MOLTMAIL_DATABASE_CONN_IDLE_TIME", "not-a-duration")
	t.Setenv("MOLTMAIL_DATABASE_CONN_TIMEOUT", "also-bad")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Database.ConnIdleTime)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnTimeout)
}
