package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSS = `
/* editor panel */
.panel { background: #222; width: 300px; }
#addSphere, #addBox { left: 10; top: 20px; }
.button { color: #ffcc0080; }
`

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(testCSS)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)

	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
	assert.Equal(t, "#222", sheet.Rules[0].Props["background"])
	assert.Equal(t, "300px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "#addSphere", sheet.Rules[1].Selector)
	assert.Equal(t, "#addBox", sheet.Rules[2].Selector)
	assert.Equal(t, "20px", sheet.Rules[2].Props["top"])
	assert.Equal(t, ".button", sheet.Rules[3].Selector)
}

func TestParseCSSSkipsOtherSelectors(t *testing.T) {
	sheet, err := ParseCSS(`div { color: #fff; } .a > .b { color: #000; } .ok { color: #123; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, ".ok", sheet.Rules[0].Selector)
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#fff")
	require.True(t, ok)
	assert.Equal(t, rl.NewColor(255, 255, 255, 255), c)

	c, ok = ParseHexColor("#ffcc0080")
	require.True(t, ok)
	assert.Equal(t, rl.NewColor(255, 204, 0, 128), c)

	_, ok = ParseHexColor("red")
	assert.False(t, ok)
	_, ok = ParseHexColor("#12345")
	assert.False(t, ok)
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{"width": "120px", "left": "50%", "font-size": "14", "accent": "#010203"})
	assert.Equal(t, int32(120), s.Width)
	assert.Equal(t, int32(50), s.LeftPct)
	assert.Equal(t, int32(14), s.FontSize)
	assert.Equal(t, rl.NewColor(1, 2, 3, 255), s.Accent)
	assert.True(t, s.Placed)

	s = ResolveProps(map[string]string{"height": "30"})
	assert.False(t, s.Placed)
	assert.Equal(t, int32(defaultFontSize), s.FontSize)
}

func TestLayoutKeepsProgrammaticPosition(t *testing.T) {
	e := New()
	sheet, err := ParseCSS(`.field { height: 24px; } #centered { left: 50%; width: 100px; }`)
	require.NoError(t, err)
	e.SetStylesheet(sheet)
	assert.True(t, e.HasStylesheet())

	value := ""
	f := NewTextField("m00", &value)
	f.Node().Bounds = rl.NewRectangle(40, 60, 70, 0)
	centered := NewNode("panel", "", "centered", "")
	e.AddWidget(f)
	e.AddNode(centered)

	e.Layout(800, 600)
	assert.Equal(t, rl.NewRectangle(40, 60, 70, 24), f.Node().Bounds)
	assert.Equal(t, float32(350), centered.Bounds.X)
}

type names []string

func (n names) Len() int          { return len(n) }
func (n names) Item(i int) string { return n[i] }

func TestTextFieldEditing(t *testing.T) {
	value := "1.5"
	f := NewTextField("x", &value)
	f.Insert([]rune{'2', '\t', 'é'})
	assert.Equal(t, "1.52é", value)
	f.Backspace()
	assert.Equal(t, "1.52", value)

	value = ""
	f.Backspace()
	assert.Equal(t, "", value)
}

func TestListView(t *testing.T) {
	var picked []int
	l := NewListView("objects", names{"a", "b", "c", "d"}, func(row int) { picked = append(picked, row) })
	l.RowHeight = 10
	l.Node().Bounds = rl.NewRectangle(0, 100, 50, 20)

	assert.Equal(t, 0, l.RowAt(100))
	assert.Equal(t, 1, l.RowAt(115))
	assert.Equal(t, -1, l.RowAt(99))

	l.Scroll(5)
	assert.Equal(t, 2, l.firstRow())
	assert.Equal(t, 3, l.RowAt(115))
	l.Scroll(-10)
	assert.Equal(t, 0, l.firstRow())

	l.Select(2)
	l.Select(9)
	assert.Equal(t, 2, l.Selected)
	assert.Equal(t, []int{2}, picked)
}

func TestListViewModelShrinks(t *testing.T) {
	l := NewListView("objects", names{"a", "b", "c", "d", "e", "f"}, nil)
	l.RowHeight = 10
	l.Node().Bounds = rl.NewRectangle(0, 100, 50, 20)

	l.Scroll(4)
	require.Equal(t, 4, l.firstRow())

	l.Model = names{"a", "b", "c"}
	assert.Equal(t, 1, l.firstRow())
	assert.Equal(t, 1, l.RowAt(100))
	assert.Equal(t, 2, l.RowAt(115))

	l.Model = names{}
	assert.Equal(t, 0, l.firstRow())
	assert.Equal(t, -1, l.RowAt(100))
}

func TestUpdateRoutesInput(t *testing.T) {
	e := New()
	clicks := 0
	b := NewButton("addSphere", "Add sphere", func() { clicks++ })
	b.Node().Bounds = rl.NewRectangle(0, 0, 100, 30)
	first, second := "", "7"
	f1 := NewTextField("a", &first)
	f1.Node().Bounds = rl.NewRectangle(0, 40, 50, 20)
	f2 := NewTextField("b", &second)
	f2.Node().Bounds = rl.NewRectangle(60, 40, 50, 20)
	e.AddWidget(b)
	e.AddWidget(f1)
	e.AddWidget(f2)

	assert.True(t, e.Update(Input{Mouse: rl.NewVector2(10, 10), Clicked: true}))
	assert.Equal(t, 1, clicks)
	assert.Nil(t, e.Focused())

	assert.True(t, e.Update(Input{Mouse: rl.NewVector2(10, 50), Clicked: true, Chars: []rune("3.")}))
	assert.Same(t, f1, e.Focused())
	assert.Equal(t, "3.", first)

	e.Update(Input{Tab: true})
	assert.Same(t, f2, e.Focused())
	e.Update(Input{Backspace: true})
	assert.Equal(t, "", second)
	e.Update(Input{Tab: true})
	assert.Same(t, f1, e.Focused())

	f2.Node().Hidden = true
	e.Update(Input{Tab: true})
	assert.Same(t, f1, e.Focused())

	e.Update(Input{Enter: true})
	assert.Nil(t, e.Focused())

	assert.False(t, e.Update(Input{Mouse: rl.NewVector2(500, 500), Clicked: true}))
}

func TestUpdateHiddenWidgetIgnored(t *testing.T) {
	e := New()
	clicks := 0
	b := NewButton("deleteObject", "Delete", func() { clicks++ })
	b.Node().Bounds = rl.NewRectangle(0, 0, 100, 30)
	b.Node().Hidden = true
	e.AddWidget(b)

	assert.False(t, e.Update(Input{Mouse: rl.NewVector2(10, 10), Clicked: true}))
	assert.Equal(t, 0, clicks)
}
