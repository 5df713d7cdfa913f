package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, 12, cfg.Engine.DefaultPageSize)
	assert.Equal(t, 100, cfg.Engine.MaxPageSize)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("server:\n  port: 9000\nstorage:\n  type: badger\n  path: /tmp/kv\nengine:\n  simulated_latency_ms: 250\n  default_page_size: 24\n  max_page_size: 48\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, StorageBadger, cfg.Storage.Type)
	assert.Equal(t, "/tmp/kv", cfg.Storage.Path)
	assert.Equal(t, 250, cfg.Engine.SimulatedLatencyMs)
	assert.Equal(t, 24, cfg.Engine.DefaultPageSize)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "/static/placeholder.png", cfg.Engine.PlaceholderImage)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Type = StorageGorm
	assert.Error(t, cfg.Validate())

	cfg.Database.DSN = "host=localhost"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Type = "s3"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Engine.MaxPageSize = 5
	assert.Error(t, cfg.Validate())
}
