package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFileAndLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "editor.txt")
	l := New(path, false)
	l.Infof("added %s", "sphere")
	l.Debugf("hidden")
	l.Log("cmd list")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO: added sphere")
	assert.True(t, strings.HasSuffix(lines[1], "] cmd list"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestLoggerDebugAndCap(t *testing.T) {
	l := Discard()
	l.SetDebug(true)
	l.Debugf("shown")
	assert.Contains(t, l.Lines()[0], "DEBUG: shown")

	for i := 0; i < maxLines+10; i++ {
		l.Warnf("line %d", i)
	}
	lines := l.Lines()
	assert.Len(t, lines, maxLines)
	assert.Contains(t, lines[len(lines)-1], "WARN: line 509")
}

func TestLoggerMirror(t *testing.T) {
	var b strings.Builder
	l := Discard()
	l.SetOutput(&b)
	l.Errorf("boom")
	assert.Contains(t, b.String(), "ERROR: boom")
}
