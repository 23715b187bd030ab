package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"catering_backend/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_MODE", "")
	t.Setenv("LOCAL_DB_DRIVER", "")
	t.Setenv("REMOTE_TIMEOUT", "")
	t.Setenv("CATERING_CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeLocal, cfg.DataMode)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)

	d, err := cfg.Dialect()
	require.NoError(t, err)
	assert.Equal(t, database.SQLite, d)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CATERING_CONFIG_FILE", "")
	t.Setenv("DATA_MODE", " Federated ")
	t.Setenv("REMOTE_BASE_URL", "https://records.example.com/")
	t.Setenv("REMOTE_TIMEOUT", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeFederated, cfg.DataMode)
	assert.Equal(t, "https://records.example.com", cfg.RemoteBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catering.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_mode: federated
local_db_driver: postgres
local_db_dsn: postgres://catering@localhost/catering?sslmode=disable
remote_base_url: http://records.internal
remote_timeout: 2s
cors_allowed_origins:
  - https://ops.example.com
`), 0o600))

	t.Setenv("CATERING_CONFIG_FILE", path)
	t.Setenv("DATA_MODE", "local")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeFederated, cfg.DataMode, "file wins over env")
	assert.Equal(t, "9090", cfg.Port, "unset file keys keep the env value")
	assert.Equal(t, 2*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, []string{"https://ops.example.com"}, cfg.CORSOrigins)

	d, err := cfg.Dialect()
	require.NoError(t, err)
	assert.Equal(t, database.Postgres, d)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CATERING_CONFIG_FILE", "")

	t.Run("FederatedWithoutRemote", func(t *testing.T) {
		t.Setenv("DATA_MODE", "federated")
		t.Setenv("REMOTE_BASE_URL", "")
		_, err := Load()
		assert.ErrorContains(t, err, "REMOTE_BASE_URL")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		t.Setenv("DATA_MODE", "local")
		t.Setenv("LOCAL_DB_DRIVER", "oracle")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Setenv("CATERING_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("UnknownModeIsAccepted", func(t *testing.T) {
		t.Setenv("DATA_MODE", "mirror")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "mirror", cfg.DataMode)
	})
}
