package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, jparse.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.Zero(t, cfg.Parser.MaxElements)
	assert.Zero(t, cfg.Parser.MaxStringBytes)
	assert.False(t, cfg.Parser.CombineSurrogates)
	assert.False(t, cfg.Input.JWCC)
	assert.Equal(t, 4, cfg.Input.Workers)
	assert.False(t, cfg.Output.JSON)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
parser:
  max_depth: 64
  max_string_bytes: 4096
  combine_surrogates: true
input:
  jwcc: true
output:
  verbose: true
`
	path := filepath.Join(t.TempDir(), ".jparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Parser.MaxDepth)
	assert.Zero(t, cfg.Parser.MaxElements)
	assert.Equal(t, 4096, cfg.Parser.MaxStringBytes)
	assert.True(t, cfg.Parser.CombineSurrogates)
	assert.True(t, cfg.Input.JWCC)
	assert.Equal(t, 4, cfg.Input.Workers, "unset values keep their defaults")
	assert.False(t, cfg.Output.JSON)
	assert.True(t, cfg.Output.Verbose)

	assert.Equal(t, jparse.Options{
		MaxDepth:          64,
		MaxStringBytes:    4096,
		CombineSurrogates: true,
	}, cfg.Options())
}

func TestConfig_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("parser: [unclosed"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "failed to parse config file")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("parser:\n  max_depth: -1\ninput:\n  workers: 0\n"), 0o644))
	_, err = LoadConfig(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
	assert.Contains(t, err.Error(), "workers")
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.Empty(t, FindConfigFile(sub))

	path := filepath.Join(root, "a", ".jparse.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  json: true\n"), 0o644))
	assert.Equal(t, path, FindConfigFile(sub))
	assert.Equal(t, path, FindConfigFile(filepath.Join(root, "a")))
}
