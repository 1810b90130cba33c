package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/config"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclusions)
	assert.False(t, cfg.NoColor)
}

func TestLoadDecodesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".polyloc.toml")
	body := "exclusions = [\"vendor\", \"node_modules\"]\nno_color = true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor", "node_modules"}, cfg.Exclusions)
	assert.True(t, cfg.NoColor)
}

func TestMergeAppendsExclusionsAndOrsNoColor(t *testing.T) {
	file := config.Config{Exclusions: []string{"vendor"}}
	flags := config.Flags{Exclusions: []string{"dist"}, NoColor: true}

	merged := config.Merge(file, flags)
	assert.ElementsMatch(t, []string{"vendor", "dist"}, merged.Exclusions)
	assert.True(t, merged.NoColor)
}
