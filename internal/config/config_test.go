package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "patscan.yml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
dictionary: words.tsv.gz
log_level: debug
scan:
  longest_only: false
  overlap: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{
		Dictionary: "words.tsv.gz",
		LogLevel:   "debug",
		Scan:       ScanConfig{LongestOnly: false, Overlap: true},
	}, cfg)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "dictionary: words.tsv\n"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.Scan.LongestOnly)

	cfg, err = Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "unknown_field: 1\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	require.ErrorContains(t, err, "log setting")
}
