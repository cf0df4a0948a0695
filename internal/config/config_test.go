package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Languages)
	assert.Empty(t, cfg.ExcludeGlobs)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ReadsYml(t *testing.T) {
	dir := t.TempDir()
	content := "languages:\n  - go\n  - python\nexcludeGlobs:\n  - \"vendor/**\"\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "langsense.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "python"}, cfg.Languages)
	assert.Equal(t, []string{"vendor/**"}, cfg.ExcludeGlobs)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MalformedYamlErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "langsense.yaml"), []byte("languages: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
