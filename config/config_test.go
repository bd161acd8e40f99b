package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-registry-api/config"
	"cafe-registry-api/models"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "cafes.db", cfg.DatabasePath)
	assert.Equal(t, "TopSecretAPIKey", cfg.APIKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "another-secret")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "another-secret", cfg.APIKey)
}

func TestOpenDBMigratesCafeTable(t *testing.T) {
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.Cafe{}))
}
