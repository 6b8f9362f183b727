package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseq/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "graphseq.yaml", "mode: component\nformat: json\nlog_level: debug\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, config.Config{Mode: "component", Format: "json", LogLevel: "debug"}, cfg)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	p := writeFile(t, "graphseq.yml", "format: json\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "global", cfg.Mode)
	assert.Equal(t, "json", cfg.Format)

	p = writeFile(t, "empty.yaml", "")
	cfg, err = config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	p := writeFile(t, "graphseq.toml", "mode = \"component\"\nlog_level = \"warn\"\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "component", cfg.Mode)
	assert.Equal(t, "yaml", cfg.Format)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoad_UnknownKeys(t *testing.T) {
	_, err := config.Load(writeFile(t, "bad.yaml", "colour: blue\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "bad.toml", "colour = \"blue\"\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "graphseq.yaml", "mode: component\n")
	t.Setenv(config.EnvMode, "global")
	t.Setenv(config.EnvLogLevel, "error")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "global", cfg.Mode)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cases := map[string]config.Config{
		"mode":   {Mode: "sideways", Format: "yaml", LogLevel: "info"},
		"format": {Mode: "global", Format: "xml", LogLevel: "info"},
		"level":  {Mode: "global", Format: "yaml", LogLevel: "loud"},
	}
	for name, c := range cases {
		assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig, name)
	}
	assert.NoError(t, config.Default().Validate())
}
