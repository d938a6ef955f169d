package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "inventory_db", cfg.DBName)
	assert.Equal(t, "items", cfg.ItemsCollection)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", DriverSQLite)
	t.Setenv("SQL_DSN", ":memory:")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("SERVER_WRITE_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, ":memory:", cfg.SQLDSN)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestLoadConfigYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("port: \"7070\"\nstorage_driver: pgx\nsql_dsn: postgres://localhost/inventory\nread_timeout: 20s\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/inventory", cfg.SQLDSN)
	assert.Equal(t, 20*time.Second, cfg.ReadTimeout)

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("PORT", "6060")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "6060", cfg.Port)
	})
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "oracle")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("sql driver without dsn", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", DriverMySQL)
		t.Setenv("SQL_DSN", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
