package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PUBLIC_BASE_URL", "https://sso.example.com/")
	t.Setenv("DB_USER", "sso")
	t.Setenv("DB_PASSWORD", "p@ss/word")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "sso_db")
	t.Setenv("MICROSOFT_CLIENT_ID", "ms-id")
	t.Setenv("MICROSOFT_CLIENT_SECRET", "ms-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "g-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "g-secret")
	t.Setenv("REDIS_ADDR", "localhost:6379")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)

	// Trailing slash on the base URL must not produce double slashes
	// in callback URLs.
	assert.Equal(t, "https://sso.example.com", cfg.PublicBaseURL)
}

func TestLoadMissingCredentialFailsFast(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_SECRET")
}

func TestDatabaseDSNEscapesCredentials(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	dsn := cfg.DatabaseDSN()
	assert.Contains(t, dsn, "sso:p%40ss%2Fword@localhost/sso_db")
	assert.Contains(t, dsn, "sslmode=disable")
}
