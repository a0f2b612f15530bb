package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/commands"
	"scene-editor/internal/logger"
)

func TestSubmitRunsCommand(t *testing.T) {
	log := logger.Discard()
	reg := commands.NewRegistry()
	fs := commands.NewFlagSet("grid")
	hide := fs.Bool("hide", false, "hide the grid")
	var hidden []bool
	reg.Register("grid", "grid [--hide]", fs, func() error {
		hidden = append(hidden, *hide)
		return nil
	})
	reg.Register("fail", "fail", commands.NewFlagSet("fail"), func() error { return errors.New("boom") })

	term := New(log, reg)
	assert.False(t, term.IsOpen())
	term.Toggle()
	assert.True(t, term.IsOpen())

	term.Type([]rune("cmd grid --hidf"))
	term.Backspace()
	term.Type([]rune("e"))
	assert.Equal(t, "cmd grid --hide", term.Input())
	term.Submit()
	assert.Equal(t, "", term.Input())
	assert.Equal(t, []bool{true}, hidden)

	term.Type([]rune("cmd fail"))
	term.Submit()
	term.Type([]rune("hello"))
	term.Submit()
	term.Submit()

	lines := log.Lines()
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[0], "cmd grid --hide"))
	assert.Contains(t, lines[2], "ERROR")
	assert.Contains(t, lines[2], "boom")
	assert.Contains(t, lines[4], "cmd help")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short"))
	long := strings.Repeat("x", 250)
	assert.Len(t, clip(long), maxLineLen)
	assert.True(t, strings.HasSuffix(clip(long), "..."))
}
