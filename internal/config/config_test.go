package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grocery:
  port: 9081
  db_path: data/grocery.db
library:
  port: 9084
  db_path: data/library.db
  log_mode: true
auth:
  enabled: true
  jwt_secret: s3cret
  expire_hours: 12
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9081, cfg.Grocery.Port)
	assert.Equal(t, "data/library.db", cfg.Library.DBPath)
	assert.True(t, cfg.Library.LogMode)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 12, cfg.Auth.ExpireHours)
	assert.Equal(t, "debug", cfg.Log.Level)

	lib, err := cfg.App("library")
	require.NoError(t, err)
	assert.Equal(t, 9084, lib.Port)

	_, err = cfg.App("bakery")
	assert.Error(t, err)

	// Load is memoized; a second call returns the same config
	again, err := Load(filepath.Join(dir, "other.yaml"))
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}
