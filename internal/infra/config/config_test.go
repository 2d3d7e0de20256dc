package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Empty(t, cfg.APIURL)
	assert.Equal(t, filepath.Join(dir, "state"), cfg.StateDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
api_url = "http://localhost:8947"
state_dir = "/var/lib/taskman"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8947", cfg.APIURL)
	assert.Equal(t, "/var/lib/taskman", cfg.StateDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`log_level = "warn"`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "state"), cfg.StateDir)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("api_url = ["), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`api_url = "http://from-file"`), 0o600))

	t.Setenv("TASKMAN_API_URL", "http://from-env")
	t.Setenv("TASKMAN_STATE_DIR", "/tmp/taskman-state")
	t.Setenv("TASKMAN_LOG_LEVEL", "error")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env", cfg.APIURL)
	assert.Equal(t, "/tmp/taskman-state", cfg.StateDir)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestDefaultConfigDir_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", AppName), DefaultConfigDir())
}
