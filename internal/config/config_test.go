package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 30*time.Minute, cfg.Room.IdleTimeout)
	assert.True(t, cfg.Database.Migrate)
	assert.Empty(t, cfg.Auth.TokenHash)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("DRAFT_HTTP_ADDR", ":9999")
	t.Setenv("DRAFT_LOG_LEVEL", "DEBUG")
	t.Setenv("DRAFT_ROOM_IDLE_TIMEOUT", "90s")
	t.Setenv("DRAFT_DATABASE_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 90*time.Second, cfg.Room.IdleTimeout)
	assert.False(t, cfg.Database.Migrate)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DRAFT_LOG_FORMAT=console\nDRAFT_HTTP_ADDR=:7000\n"), 0o600))
	t.Setenv("DRAFT_HTTP_ADDR", ":7001")
	// godotenv sets variables the test did not own; restore them afterwards.
	t.Setenv("DRAFT_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("DRAFT_LOG_FORMAT"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, ":7001", cfg.HTTP.Addr)
}

func TestValidate(t *testing.T) {
	t.Setenv("DRAFT_LOG_LEVEL", "loud")
	_, err := Load()
	assert.ErrorContains(t, err, "invalid log level")
}
