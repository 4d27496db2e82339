package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvJWTSecret, "secret")
	t.Setenv(EnvDBHost, "db")
	t.Setenv("EMB_DB_USER", "emb")
	t.Setenv("EMB_DB_PASSWORD", "p@ss")
	t.Setenv("EMB_DB_NAME", "embroidery")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "/images", cfg.Storage.ImagePrefix)
	assert.Equal(t, "@hourly", cfg.Jobs.LedgerAudit)
	assert.Equal(t, "postgres://emb:p%40ss@db:5432/embroidery?sslmode=disable", cfg.DSN())
}

func TestLoadConfig_ExplicitDSNWins(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDBDSN, "postgres://other@host/db")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://other@host/db", cfg.DSN())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	require.NoError(t, os.Unsetenv(EnvJWTSecret))

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoadConfig_MissingDatabase(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDBHost, "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDBHost)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("EMB_HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("EMB_HTTP_PORT"))

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("EMB_HTTP_PORT=9090\nEMB_JOB_LEDGER_AUDIT=@daily\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("EMB_HTTP_PORT")
		_ = os.Unsetenv("EMB_JOB_LEDGER_AUDIT")
	})

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "@daily", cfg.Jobs.LedgerAudit)
}
