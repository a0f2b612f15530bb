package editorui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/editor"
	"scene-editor/internal/logger"
	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
	"scene-editor/internal/store"
	"scene-editor/internal/ui"
	"scene-editor/internal/vfs"
)

func newView(t *testing.T) (*View, *ui.Engine, *editor.Panel) {
	t.Helper()
	dir, err := vfs.Mem()
	require.NoError(t, err)
	p := editor.New(scene.NewRegistry(nil), store.NewFileStore(dir, "scene.bin"), logger.Discard())
	eng := ui.New()
	require.NoError(t, LoadStyle(eng, ""))
	v := New(context.Background(), eng, p, logger.Discard(), 360)
	v.Layout(1280, 720)
	return v, eng, p
}

func center(n *ui.Node) rl.Vector2 {
	b := n.Bounds
	return rl.NewVector2(b.X+b.Width/2, b.Y+b.Height/2)
}

func click(eng *ui.Engine, n *ui.Node) {
	eng.Update(ui.Input{Mouse: center(n), Clicked: true})
}

func TestButtonsDrivePanel(t *testing.T) {
	v, eng, p := newView(t)

	click(eng, v.addSphere.Node())
	click(eng, v.addBox.Node())
	require.Equal(t, 2, p.Registry().Len())
	assert.Equal(t, "added new_box", v.Status())

	// Second list row.
	lb := v.list.Node().Bounds
	eng.Update(ui.Input{Mouse: rl.NewVector2(lb.X+5, lb.Y+v.list.RowHeight*1.5), Clicked: true})
	assert.Equal(t, 1, p.Selected())

	click(eng, v.showBtn.Node())
	assert.Equal(t, 1, p.Target())
	v.Sync()
	assert.False(t, v.size[2].Node().Hidden)
	assert.Equal(t, "Z", v.sizeLabels[2].Text)

	// Type a translation into matrix[0][3] and a new Y extent.
	click(eng, v.matrix[3].Node())
	eng.Update(ui.Input{Backspace: true, Chars: []rune("5")})
	click(eng, v.size[1].Node())
	eng.Update(ui.Input{Backspace: true, Chars: []rune("9")})
	click(eng, v.updateBtn.Node())

	o, err := p.Registry().At(1)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Translate3D(5, 0, 0), o.Transform)
	assert.Equal(t, primitives.Box{X: 4, Y: 9, Z: 4}, o.Figure)
	assert.Equal(t, "updated row 1", v.Status())

	click(eng, v.deleteBtn.Node())
	assert.Equal(t, 1, p.Registry().Len())
	assert.Equal(t, -1, p.Target())
	v.Sync()
	assert.True(t, v.updateBtn.Node().Hidden)
	assert.True(t, v.size[0].Node().Hidden)
}

func TestSphereShowsOneSizeField(t *testing.T) {
	v, eng, p := newView(t)
	click(eng, v.addSphere.Node())
	p.Select(0)
	click(eng, v.showBtn.Node())
	v.Sync()

	assert.False(t, v.size[0].Node().Hidden)
	assert.Equal(t, "Radius", v.sizeLabels[0].Text)
	assert.True(t, v.size[1].Node().Hidden)
	assert.True(t, v.size[2].Node().Hidden)
	assert.Equal(t, "3", p.Form().Size[0])
}

func TestBadInputShowsStatus(t *testing.T) {
	v, eng, p := newView(t)
	click(eng, v.addSphere.Node())
	p.Select(0)
	click(eng, v.showBtn.Node())
	v.Sync()

	p.Form().Color[1] = "lots"
	click(eng, v.updateBtn.Node())
	assert.Contains(t, v.Status(), "color.g")

	o, err := p.Registry().At(0)
	require.NoError(t, err)
	assert.Equal(t, primitives.DefaultAmbient, o.Material.Ambient)
}

func TestLayoutRightEdge(t *testing.T) {
	v, _, _ := newView(t)
	assert.Equal(t, float32(1280-360), v.bg.Bounds.X)
	assert.Equal(t, float32(720), v.bg.Bounds.Height)
	last := v.status.Bounds
	assert.Less(t, last.Y+last.Height, float32(720))
}

func TestLoadStyleFallsBackOnEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.css")
	require.NoError(t, os.WriteFile(path, []byte("/* nothing yet */\n"), 0o644))

	eng := ui.New()
	assert.ErrorContains(t, LoadStyle(eng, path), "no rules")
	assert.True(t, eng.HasStylesheet(), "built-in style in place")

	eng = ui.New()
	require.NoError(t, LoadStyle(eng, filepath.Join(t.TempDir(), "missing.css")))
	assert.True(t, eng.HasStylesheet())
}
