package fonts

import (
	"os"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/vfs"
)

func memFonts(t *testing.T, files ...string) vfs.Dir {
	t.Helper()
	dir, err := vfs.Mem()
	require.NoError(t, err)
	for _, f := range files {
		if p := parent(f); p != "." {
			require.NoError(t, hackpadfs.MkdirAll(dir.FS, dir.Path(p), 0o755))
		}
		require.NoError(t, hackpadfs.WriteFullFile(dir.FS, dir.Path(f), []byte("font"), 0o644))
	}
	return dir
}

func parent(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return "."
}

func TestScan(t *testing.T) {
	dir := memFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "readme.txt", "Mono.otf")
	list, err := Scan(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono.otf"}, list)
}

func TestFind(t *testing.T) {
	dir := memFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Google_Sans/GoogleSans-Medium.ttf")

	got, err := Find(dir, "Inter")
	require.NoError(t, err)
	assert.Equal(t, "Inter/Inter-Regular.ttf", got)

	got, err = Find(dir, "Inter/Inter-Bold.ttf")
	require.NoError(t, err)
	assert.Equal(t, "Inter/Inter-Bold.ttf", got)

	got, err = Find(dir, "google sans")
	require.NoError(t, err)
	assert.Equal(t, "Google_Sans/GoogleSans-Medium.ttf", got)

	_, err = Find(dir, "Comic")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanMissingDir(t *testing.T) {
	dir, err := vfs.Mem()
	require.NoError(t, err)
	dir.Root = "nope"
	list, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, list)
}
