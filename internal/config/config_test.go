package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingUsesDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "editor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: sqlite\n  path: data/scene.db\nviewport:\n  grid_visible: false\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.Store.Backend)
	assert.Equal(t, "data/scene.db", c.Store.Path)
	assert.False(t, c.Viewport.GridVisible)
	assert.Equal(t, 1280, c.Window.Width, "unset keys keep defaults")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [oops"), 0o644))

	c, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EDITOR_STORE_PATH", "/tmp/x.bin")
	t.Setenv("EDITOR_LOG_DEBUG", "1")
	c, err := Load(filepath.Join(t.TempDir(), "editor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.bin", c.Store.Path)
	assert.True(t, c.Log.Debug)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "editor.yaml")
	c := Default()
	c.Viewport.ShowFPS = true
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	c := Default()
	c.Store.Path = "scenes/a.bin"
	require.NoError(t, Save(path, c))
	t.Setenv("EDITOR_STORE_PATH", "/tmp/override.bin")

	withEnv, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.bin", withEnv.Store.Path)

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, file)
}
