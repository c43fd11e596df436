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
	t.Setenv("HIREORBIT_AUTH_SECRET", "test-secret-at-least-16-chars")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.Origin)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "data/hireorbit.db", cfg.Database.Path)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth secret")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HIREORBIT_AUTH_SECRET", "test-secret-at-least-16-chars")
	t.Setenv("HIREORBIT_SERVER_PORT", "9090")
	t.Setenv("HIREORBIT_AUTH_TOKENTTL", "45m")
	t.Setenv("HIREORBIT_DATABASE_PATH", ":memory:")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, ":memory:", cfg.Database.Path)
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("HIREORBIT_AUTH_SECRET", "test-secret-at-least-16-chars")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 8181\n  origin: https://app.example.com\nauth:\n  tokenttl: 1h\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "https://app.example.com", cfg.Server.Origin)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	t.Setenv("HIREORBIT_AUTH_SECRET", "test-secret-at-least-16-chars")
	t.Setenv("HIREORBIT_SERVER_PORT", "7070")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8181\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HIREORBIT_AUTH_SECRET", "test-secret-at-least-16-chars")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HIREORBIT_AUTH_SECRET", "test-secret-at-least-16-chars")
	t.Setenv("HIREORBIT_SERVER_PORT", "-1")

	_, err := Load("")
	require.Error(t, err)
}
