package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhushya/Kloudmate/internal/errors"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
interval = 5
database = "/var/lib/kloudmate/telemetry.db"
hostname = "db-host-01"
ollama_url = "http://ollama.internal:11434"
ollama_model = "llama3:8b"
log_level = "debug"
`)
	configPath := filepath.Join(tempDir, "kloudmate.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("KLOUDMATE_CONFIG", configPath)

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Interval, "Expected Interval 5")
	assert.Equal(t, "/var/lib/kloudmate/telemetry.db", cfg.DBPath)
	assert.Equal(t, "db-host-01", cfg.Hostname)
	assert.Equal(t, "http://ollama.internal:11434", cfg.OllamaURL)
	assert.Equal(t, "llama3:8b", cfg.OllamaModel)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	// Point the config lookup at an empty directory so no real config
	// file on the machine leaks into the test.
	t.Setenv("KLOUDMATE_CONFIG", filepath.Join(t.TempDir(), "kloudmate.toml"))

	cfg, err := load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, DefaultInterval, cfg.Interval, "Expected default Interval 10")
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultOllamaURL, cfg.OllamaURL)
	assert.Equal(t, DefaultOllamaModel, cfg.OllamaModel)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)

	hostname, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hostname, cfg.Hostname, "Expected OS hostname as default")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
This is not a valid TOML file
`)
	configPath := filepath.Join(tempDir, "kloudmate.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("KLOUDMATE_CONFIG", configPath)

	_, err = load(nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrReadConfig, errors.CodeOf(err))
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("KLOUDMATE_CONFIG", filepath.Join(t.TempDir(), "kloudmate.toml"))

	_, err := load([]string{"--log-level", "shout"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidLogLevel, errors.CodeOf(err))
}

func TestInvalidInterval(t *testing.T) {
	t.Setenv("KLOUDMATE_CONFIG", filepath.Join(t.TempDir(), "kloudmate.toml"))

	_, err := load([]string{"--interval", "0"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInterval, errors.CodeOf(err))
}

func TestFlagsOverrideFile(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
interval = 5
log_level = "error"
`)
	configPath := filepath.Join(tempDir, "kloudmate.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("KLOUDMATE_CONFIG", configPath)

	cfg, err := load([]string{"--interval", "30", "--log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Interval, "Expected flag to override file value")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected flag to override file value")
}

func TestEnvOverridesFile(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
database = "/from/file.db"
`)
	configPath := filepath.Join(tempDir, "kloudmate.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("KLOUDMATE_CONFIG", configPath)
	t.Setenv("KLOUDMATE_DATABASE", "/from/env.db")

	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath, "Expected env to override file value")
}
