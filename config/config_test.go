package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "data/buildings.json", cfg.Dataset.Source)
	assert.Equal(t, "overview", cfg.DefaultView)
	assert.Equal(t, 12, cfg.Histogram.TargetBins)
	assert.Equal(t, "exports", cfg.ExportDir)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataset:
  source: https://example.org/buildings.json
defaultView: energy
histogram:
  targetBins: 20
  sanityCeiling: 50000000
narrative:
  model: gemini-2.0-pro
exportDir: /tmp/out
`), 0o644))

	cfg, err := Load(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/buildings.json", cfg.Dataset.Source)
	assert.Equal(t, "energy", cfg.DefaultView)
	assert.Equal(t, 20, cfg.Histogram.TargetBins)
	assert.Equal(t, 50000000.0, cfg.Histogram.SanityCeiling)
	assert.Equal(t, "gemini-2.0-pro", cfg.Narrative.Model)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultView: water\n"), 0o644))

	cfg, err := Load(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "water", cfg.DefaultView)
	assert.Equal(t, "data/buildings.json", cfg.Dataset.Source)
	assert.Equal(t, 12, cfg.Histogram.TargetBins)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: [unclosed"), 0o644))

	_, err := Load(path, discardLogger())
	assert.Error(t, err)
}

func TestLoadClampsTargetBins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("histogram:\n  targetBins: -3\n"), 0o644))

	cfg, err := Load(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Histogram.TargetBins)
}
