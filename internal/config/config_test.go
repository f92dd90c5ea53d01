package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
api:
  environment: "development"
  port: "8000"
postgres:
  host: "localhost"
  db: "ecohero"
`)

	config, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "8000", config.API.Port)
	assert.Equal(t, "ecohero", config.Postgres.DB)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Run("overrides file values", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("DATABASE_NAME", "ecohero_test")

		path := writeConfigFile(t, `
api:
  port: "8000"
postgres:
  db: "ecohero"
`)

		config, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "9000", config.API.Port)
		assert.Equal(t, "ecohero_test", config.Postgres.DB)
	})

	t.Run("fills in missing sections", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("DATABASE_NAME", "ecohero_test")

		path := writeConfigFile(t, `
gin:
  mode: "test"
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.NotNil(t, config.API)
		require.NotNil(t, config.Postgres)
		assert.Equal(t, "9000", config.API.Port)
		assert.Equal(t, "ecohero_test", config.Postgres.DB)
	})
}
