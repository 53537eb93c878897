package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fileNames, err := filepath.Glob(filepath.FromSlash("testdata/*.*"))
	require.NoError(t, err)
	require.NotEmpty(t, fileNames)

	for _, fn := range fileNames {
		_, err := Load(fn)
		assert.NoError(t, err, fn)
	}

	invalidFileNames, err := filepath.Glob(filepath.FromSlash("testdata/invalid/*.*"))
	require.NoError(t, err)
	for _, fn := range invalidFileNames {
		_, err := Load(fn)
		assert.Error(t, err, "%s: loading should fail", fn)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	c, err := Load(filepath.FromSlash("testdata/sqlite.yaml"))
	require.NoError(t, err)

	assert.True(t, c.Logging.JSONFormat)
	assert.Equal(t, 4000, c.API.Port)
	assert.Equal(t, "/api/graphql", c.API.GraphQLPath)
	assert.Equal(t, 8, c.API.MaxDepth)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.Equal(t, "linkfeed.db", c.Database.Settings["dsn"])
	assert.Equal(t, "memory", c.Cache.Type)
	assert.True(t, c.Prometheus.Enabled)
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.FromSlash("testdata/postgres.toml"))
	require.NoError(t, err)

	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, "/graphql", c.API.GraphQLPath)
	assert.Equal(t, "none", c.Cache.Type)
	assert.Equal(t, "postgres", c.Database.Type)
}

func TestDefault(t *testing.T) {
	t.Setenv("LINKFEED_API_PORT", "9999")

	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 9999, c.API.Port)
	assert.True(t, c.API.Enabled)
	assert.Equal(t, "memory", c.Database.Type)
	assert.Equal(t, "info", c.Logging.Level)
}
