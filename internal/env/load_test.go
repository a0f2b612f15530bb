package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# comment\nEDITOR_T_A=one\nexport EDITOR_T_B='two words'\nEDITOR_T_C=file\n"), 0o644))
	t.Setenv("EDITOR_T_C", "process")
	os.Unsetenv("EDITOR_T_A")
	os.Unsetenv("EDITOR_T_B")
	t.Cleanup(func() {
		os.Unsetenv("EDITOR_T_A")
		os.Unsetenv("EDITOR_T_B")
	})

	require.NoError(t, Load(path))
	assert.Equal(t, "one", os.Getenv("EDITOR_T_A"))
	assert.Equal(t, "two words", os.Getenv("EDITOR_T_B"))
	assert.Equal(t, "process", os.Getenv("EDITOR_T_C"))
}

func TestLoadMissing(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nope")))
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EDITOR_T_D=\"unterminated\n"), 0o644))
	assert.Error(t, Load(path))
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("EDITOR_T_INT", "42")
	t.Setenv("EDITOR_T_BOOL", "true")
	t.Setenv("EDITOR_T_BAD", "x")
	assert.Equal(t, 42, Int("EDITOR_T_INT", 1))
	assert.Equal(t, 1, Int("EDITOR_T_BAD", 1))
	assert.True(t, Bool("EDITOR_T_BOOL", false))
	assert.False(t, Bool("EDITOR_T_BAD", false))
	assert.Equal(t, "d", String("EDITOR_T_UNSET", "d"))
}
