package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "demicode.toml", []byte(`
unicode_version = "15.0.0"
ucd_dir = "/srv/ucd"
east_asian = true
`), 0o644))

	cfg, err := loadConfig(fsys, "demicode.toml")
	require.NoError(t, err)
	assert.Equal(t, "15.0.0", cfg.UnicodeVersion)
	assert.Equal(t, "/srv/ucd", cfg.UCDDir)
	assert.True(t, cfg.EastAsian)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(afero.NewMemMapFs(), "nope.toml")
	assert.ErrorContains(t, err, "reading config")
}

func TestLoadConfigMalformed(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "demicode.toml",
		[]byte("east_asian = maybe\n"), 0o644))

	_, err := loadConfig(fsys, "demicode.toml")
	assert.ErrorContains(t, err, "parsing config")
}
