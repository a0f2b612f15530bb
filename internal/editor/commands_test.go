package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/commands"
	"scene-editor/internal/primitives"
)

func TestConsoleDrivesPanel(t *testing.T) {
	f := newFixture(t)
	reg := commands.NewRegistry()
	var out []string
	RegisterCommands(context.Background(), reg, f.panel, func(s string) { out = append(out, s) })

	run := func(line string) error {
		args, ok := commands.Parse(line)
		require.True(t, ok)
		return reg.Execute(args)
	}

	require.NoError(t, run("cmd add --type sphere"))
	require.NoError(t, run("cmd add box"))
	assert.Error(t, run("cmd add --type cone"))
	assert.Equal(t, 2, f.panel.Registry().Len())

	require.NoError(t, run("cmd select 1"))
	assert.Equal(t, 1, f.panel.Selected())
	assert.Error(t, run("cmd select 7"))

	require.NoError(t, run("cmd show"))
	assert.Equal(t, 1, f.panel.Target())
	require.NoError(t, run("cmd set --size 1,2,3 --cell 0,3=5 --color 9,9,9,255"))
	assert.Error(t, run("cmd set --size 1"))
	require.NoError(t, run("cmd update"))

	o, _ := f.panel.Registry().At(1)
	assert.Equal(t, primitives.Box{X: 1, Y: 2, Z: 3}, o.Figure)
	assert.Equal(t, float32(5), o.Transform.At(0, 3))
	assert.Equal(t, uint8(9), o.Material.Ambient.R)

	out = nil
	require.NoError(t, run("cmd list"))
	assert.Equal(t, []string{" 0 new_sphere", "*1 new_box"}, out)

	require.NoError(t, run("cmd delete"))
	assert.Equal(t, 1, f.panel.Registry().Len())
	assert.Len(t, f.stored(t), 1)

	require.NoError(t, run("cmd delete --row 0"))
	assert.Equal(t, 0, f.panel.Registry().Len())

	out = nil
	require.NoError(t, run("cmd list"))
	assert.Equal(t, []string{"(empty scene)"}, out)
}

func TestConsoleSetNeedsShow(t *testing.T) {
	f := newFixture(t)
	reg := commands.NewRegistry()
	RegisterCommands(context.Background(), reg, f.panel, func(string) {})
	assert.Error(t, reg.Execute([]string{"set", "--size", "1"}))
	assert.NoError(t, reg.Execute([]string{"update"}))
}

func TestConsoleNewScene(t *testing.T) {
	f := newFixture(t)
	reg := commands.NewRegistry()
	RegisterCommands(context.Background(), reg, f.panel, func(string) {})
	require.NoError(t, reg.Execute([]string{"add", "--type", "box"}))
	require.NoError(t, reg.Execute([]string{"newscene"}))
	assert.Equal(t, 0, f.panel.Registry().Len())
	assert.Empty(t, f.stored(t))
}
