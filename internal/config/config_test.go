package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.TLS())
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, 1.0, cfg.RateLimit)
	assert.Equal(t, 3, cfg.RateBurst)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_TLSDefaultsTo443(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"TLS_CERT": "server.crt", "TLS_KEY": "server.key", "TOKEN_KEY": "k"}))
	require.NoError(t, err)

	assert.Equal(t, ":443", cfg.Addr)
	assert.True(t, cfg.TLS())
	assert.True(t, cfg.AuthEnabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"ADDR": "127.0.0.1:9000", "RATE_LIMIT": "2.5", "RATE_BURST": "10", "SHUTDOWN_TIMEOUT": "1s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	for k, v := range map[string]string{
		"RATE_LIMIT":       "fast",
		"RATE_BURST":       "0",
		"SHUTDOWN_TIMEOUT": "soon",
	} {
		_, err := FromEnv(env(map[string]string{k: v}))
		assert.ErrorContains(t, err, k)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ADDR=:7070\nRATE_BURST=7\n"), 0o600))
	t.Setenv("ADDR", "")
	os.Unsetenv("ADDR")
	t.Setenv("RATE_BURST", "")
	os.Unsetenv("RATE_BURST")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 7, cfg.RateBurst)
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
