package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("THREADSPLIT_SERVER_PORT", "8080")
	t.Setenv("THREADSPLIT_POST_DELAY", "500ms")
	t.Setenv("THREADSPLIT_LOG_LEVEL", "debug")
	t.Setenv("THREADSPLIT_CACHE_CAPACITY", "16")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 500*time.Millisecond, cfg.Post.Delay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 16, cfg.Cache.Capacity)
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("THREADSPLIT_SERVER_HOST=0.0.0.0\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("THREADSPLIT_SERVER_HOST") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("THREADSPLIT_SERVER_PORT", "70000")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Cache.Capacity = 0
	assert.Error(t, cfg.Validate())
}

func TestTransformEnvKey(t *testing.T) {
	key, val := transformEnvKey("THREADSPLIT_SERVER_PORT", "1")
	assert.Equal(t, "server.port", key)
	assert.Equal(t, "1", val)

	key, _ = transformEnvKey("THREADSPLIT_LOG_JSON", "true")
	assert.Equal(t, "log.json", key)
}
