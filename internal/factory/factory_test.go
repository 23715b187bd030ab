package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catering_backend/internal/config"
	"catering_backend/internal/datastore"
	"catering_backend/internal/federation"
	"catering_backend/internal/metrics"
	"catering_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, mode string) *config.Config {
	return &config.Config{
		DataMode:      mode,
		LocalDriver:   "sqlite",
		LocalDSN:      filepath.Join(t.TempDir(), "factory.db"),
		RemoteBaseURL: "http://127.0.0.1:1",
		RemoteTimeout: time.Second,
	}
}

func TestNew(t *testing.T) {
	t.Run("Local", func(t *testing.T) {
		svc := New(testConfig(t, config.ModeLocal))
		store, ok := svc.(*repositories.LocalStore)
		require.True(t, ok)
		t.Cleanup(func() { _ = store.Close() })

		users, err := svc.GetUsers(context.Background())
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Federated", func(t *testing.T) {
		svc := New(testConfig(t, config.ModeFederated), WithMetrics(metrics.New()))
		_, ok := svc.(*federation.Router)
		assert.True(t, ok)
	})

	t.Run("UnknownModeIsNull", func(t *testing.T) {
		svc := New(testConfig(t, "mirror"))
		assert.IsType(t, datastore.NullService{}, svc)
	})

	t.Run("ModeNoneIsNull", func(t *testing.T) {
		svc := New(testConfig(t, config.ModeNone))
		assert.IsType(t, datastore.NullService{}, svc)
	})

	t.Run("BadRemoteURLIsNull", func(t *testing.T) {
		cfg := testConfig(t, config.ModeFederated)
		cfg.RemoteBaseURL = "://nope"
		assert.IsType(t, datastore.NullService{}, New(cfg))
	})

	t.Run("UnopenableLocalIsNull", func(t *testing.T) {
		cfg := testConfig(t, config.ModeLocal)
		cfg.LocalDriver = "postgres"
		cfg.LocalDSN = ""
		assert.IsType(t, datastore.NullService{}, New(cfg))
	})
}

func TestBuild_ReportsConstructionError(t *testing.T) {
	cfg := testConfig(t, config.ModeLocal)
	cfg.LocalDriver = "oracle"
	_, err := build(cfg, options{})
	assert.ErrorIs(t, err, datastore.ErrConstruction)

	var ce *datastore.ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, datastore.StoreLocal, ce.Store)
}

func TestShared(t *testing.T) {
	t.Setenv("CATERING_CONFIG_FILE", "")
	t.Setenv("DATA_MODE", config.ModeNone)

	first := Shared()
	assert.Equal(t, first, Shared())
	assert.IsType(t, datastore.NullService{}, first)
}

func TestNew_AppliesSchemaScript(t *testing.T) {
	cfg := testConfig(t, config.ModeLocal)
	cfg.LocalSchema = filepath.Join(t.TempDir(), "extra.sql")
	require.NoError(t, os.WriteFile(cfg.LocalSchema,
		[]byte(`INSERT INTO ingredients (name, unit, price_per_unit, is_sample, created_at) VALUES ('Salt', 'kg', 1.5, FALSE, CURRENT_TIMESTAMP);`), 0o600))

	svc := New(cfg)
	store, ok := svc.(*repositories.LocalStore)
	require.True(t, ok)
	t.Cleanup(func() { _ = store.Close() })

	got, err := svc.GetIngredients(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salt", got[0].Name)

	cfg = testConfig(t, config.ModeLocal)
	cfg.LocalSchema = filepath.Join(t.TempDir(), "missing.sql")
	assert.IsType(t, datastore.NullService{}, New(cfg))
}
