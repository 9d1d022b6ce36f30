package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own config out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Z", cfg.KeyLeft)
	assert.Equal(t, "X", cfg.KeyRight)
	assert.Equal(t, 0.8, cfg.MusicVolume)
	assert.Equal(t, "Title", cfg.Sort)
	assert.Equal(t, "skin.yaml", cfg.Skin)
}

func TestLoadOverrides(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.WriteFile("config.toml", []byte(`
key_left = "a"
music_volume = 0.5
sort = "bpm"
`), 0o644))

	extra := filepath.Join(dir, "extra.toml")
	require.NoError(t, os.WriteFile(extra, []byte(`
key_right = "space"
effect_volume = 4.0
`), 0o644))

	cfg, err := Load(extra)
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.KeyLeft)
	assert.Equal(t, "space", cfg.KeyRight)
	assert.Equal(t, 0.5, cfg.MusicVolume)
	assert.Equal(t, 1.0, cfg.EffectVolume)
	assert.Equal(t, "bpm", cfg.Sort)
}

func TestLoadKeepsKeyNames(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("config.toml", []byte(`
key_left = "Left"
key_right = "Enter"
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Left", cfg.KeyLeft)
	assert.Equal(t, "Enter", cfg.KeyRight)
}

func TestLoadInvalidTOML(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("config.toml", []byte(`key_left = `), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "songs"), expandPath("~/songs"))
	assert.Equal(t, "/abs", expandPath("/abs"))
}
