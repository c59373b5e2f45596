package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodepack/internal/adapters/config"
	"go.trai.ch/nodepack/internal/core/domain"
)

func TestLoad_MissingFileYieldsZeroOptions(t *testing.T) {
	loader := config.NewLoader()

	opts, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.Options{}, opts)
}

func TestLoad_ReadsProjectDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `entry: src/index.js
out: dist/app
target: "18"
platform: all
assets:
  - config.json
  - static
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o600))

	loader := config.NewLoader()
	opts, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "src/index.js", opts.EntryPoint)
	assert.Equal(t, "dist/app", opts.OutFile)
	assert.Equal(t, "18", opts.NodeVersion)
	assert.Equal(t, "all", opts.Platform)
	assert.Equal(t, []string{"config.json", "static"}, opts.Assets)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte("entry: [unclosed"), 0o600))

	loader := config.NewLoader()
	_, err := loader.Load(dir)
	assert.Error(t, err)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte("out: bin/tool\n"), 0o600))

	loader := config.NewLoader()
	opts, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "bin/tool", opts.OutFile)
	assert.Empty(t, opts.EntryPoint)
	assert.Empty(t, opts.Assets)
}
