package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ExpandsEnvAndDefaults(t *testing.T) {
	t.Setenv("AWC_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
storage:
  driver: postgres
  database:
    user: awc
    password: ${AWC_DB_PASSWORD}
api:
  request_delay: 500ms
rabbitmq:
  enabled: true
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "s3cret", cfg.Storage.Database.Password)
	assert.Equal(t,
		"host=localhost port=5432 user=awc password=s3cret dbname=awc_tracker sslmode=disable",
		cfg.Storage.DSN())
	assert.Equal(t, 500*time.Millisecond, cfg.API.RequestDelay)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "https://graphql.anilist.co", cfg.API.BaseURL)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "awc_tracker", cfg.RabbitMQ.Exchange)
	assert.Equal(t, time.Hour, cfg.Watch.Interval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, StorageDisk, cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, 4*time.Second, cfg.API.RequestDelay)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_DelayFromEnv(t *testing.T) {
	t.Setenv("ANILIST_API_DELAY", "250")

	cfg, err := Load(writeConfig(t, "api:\n  request_delay: 10s\n"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.API.RequestDelay)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "storage:\n  driver: mongo\n"))
	assert.ErrorContains(t, err, "unknown storage driver")

	t.Setenv("ANILIST_API_DELAY", "soon")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "ANILIST_API_DELAY")
}

func TestStorageConfig_SQLiteDSN(t *testing.T) {
	s := StorageConfig{Driver: StorageSQLite, Path: "/tmp/awc"}
	assert.Equal(t, filepath.Join("/tmp/awc", "awc.db"), s.DSN())
}
