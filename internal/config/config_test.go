package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permindex/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, "format = \"csv\"\nlength = 8\nworkers = 3\nlog_level = \"debug\"\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{Format: config.FormatCSV, Length: 8, Workers: 3, LogLevel: "debug"}, cfg)
}

func TestLoad_Partial(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "length = 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Length)
	assert.Equal(t, config.FormatList, cfg.Format)
	assert.Equal(t, config.Default().Workers, cfg.Workers)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load(writeFile(t, "colour = \"red\"\n"))
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestLoad_Invalid(t *testing.T) {
	for _, body := range []string{"format = \"json\"\n", "length = -1\n", "workers = 0\n"} {
		cfg, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalid, body)
		assert.Equal(t, config.Config{}, cfg, body)
	}
}

func TestLoad_BadSyntax(t *testing.T) {
	_, err := config.Load(writeFile(t, "format = \n"))
	assert.Error(t, err)
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "permindex", "config.toml"), path)
}
