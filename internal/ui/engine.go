package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet, nodes and widgets, routes input to widgets and draws
// everything with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet, nodes or screen size change.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	widgets      map[*Node]Widget
	cachedStyles []ComputedStyle
	cacheValid   bool
	screenW      int32
	screenH      int32
	font         rl.Font
	focus        *TextField
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{widgets: make(map[*Node]Widget)}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	e.UnloadFont()
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is zero when the default font is in use.
func (e *Engine) Font() rl.Font {
	return e.font
}

// UnloadFont releases the loaded font, if any.
func (e *Engine) UnloadFont() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// AddWidget appends the widget's node and makes it receive input.
func (e *Engine) AddWidget(w Widget) {
	e.widgets[w.Node()] = w
	e.AddNode(w.Node())
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := false
		if len(sel) > 0 && sel[0] == '.' {
			matches = n.Class == sel[1:]
		} else if len(sel) > 0 && sel[0] == '#' {
			matches = n.ID == sel[1:]
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// resolveBounds sets n.Bounds from style (left, top, width, height). Sizes and positions the
// style does not give keep their current values.
func resolveBounds(n *Node, style ComputedStyle, screenW, screenH int32) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	if !style.Placed {
		return
	}
	n.Bounds.X = float32(style.Left)
	n.Bounds.Y = float32(style.Top)
	if style.LeftPct >= 0 {
		n.Bounds.X = float32((screenW - int32(n.Bounds.Width)) * style.LeftPct / 100)
	}
	if style.TopPct >= 0 {
		n.Bounds.Y = float32((screenH - int32(n.Bounds.Height)) * style.TopPct / 100)
	}
}

// Layout resolves styles and bounds for a screen of the given size. Draw calls it every frame;
// the work is only redone when something changed.
func (e *Engine) Layout(screenW, screenH int32) {
	if e.cacheValid && screenW == e.screenW && screenH == e.screenH {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		resolveBounds(n, e.cachedStyles[i], screenW, screenH)
	}
	e.screenW, e.screenH = screenW, screenH
	e.cacheValid = true
}

// Invalidate forces the next Layout to recompute styles and bounds.
func (e *Engine) Invalidate() {
	e.cacheValid = false
}

// widgetAt returns the topmost visible widget under p.
func (e *Engine) widgetAt(p rl.Vector2) Widget {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if !n.Contains(p) {
			continue
		}
		if w, ok := e.widgets[n]; ok {
			return w
		}
	}
	return nil
}

// Focused returns the text field receiving keys, or nil.
func (e *Engine) Focused() *TextField {
	return e.focus
}

// Update routes one frame of input: clicks to the widget under the pointer, wheel to the list
// under the pointer and typed keys to the focused field. It returns true when the UI consumed
// the click or keyboard.
func (e *Engine) Update(in Input) bool {
	if e.focus != nil && e.focus.Node().Hidden {
		e.focus = nil
	}
	consumed := false
	if in.Clicked {
		switch w := e.widgetAt(in.Mouse).(type) {
		case *Button:
			e.focus = nil
			w.Click()
			consumed = true
		case *TextField:
			e.focus = w
			consumed = true
		case *ListView:
			e.focus = nil
			w.Select(w.RowAt(in.Mouse.Y))
			consumed = true
		default:
			e.focus = nil
		}
	}
	if in.Wheel != 0 {
		if l, ok := e.widgetAt(in.Mouse).(*ListView); ok {
			l.Scroll(-int(in.Wheel))
			consumed = true
		}
	}
	if f := e.focus; f != nil {
		if in.Backspace {
			f.Backspace()
		}
		f.Insert(in.Chars)
		switch {
		case in.Tab:
			e.focus = e.nextField(f)
		case in.Enter, in.Escape:
			e.focus = nil
		}
		consumed = true
	}
	return consumed
}

// nextField returns the visible text field after f in node order, wrapping around.
func (e *Engine) nextField(f *TextField) *TextField {
	var fields []*TextField
	at := -1
	for _, n := range e.nodes {
		tf, ok := e.widgets[n].(*TextField)
		if !ok || n.Hidden {
			continue
		}
		if tf == f {
			at = len(fields)
		}
		fields = append(fields, tf)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields[(at+1)%len(fields)]
}

// Draw draws all nodes: for each visible node, resolve style (cached), then draw background,
// border and content.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.cachedStyles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		border, hasBorder := style.Border, style.HasBorder
		if f, ok := e.widgets[n].(*TextField); ok && f == e.focus {
			border, hasBorder = style.Accent, true
		}
		if hasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, border)
		}

		pad := style.Padding
		if pad <= 0 {
			pad = 4
		}
		switch wd := e.widgets[n].(type) {
		case *TextField:
			text := *wd.Value
			if wd == e.focus {
				text += "_"
			}
			rl.BeginScissorMode(x, y, w, h)
			e.drawText(text, x+pad, y+(h-style.FontSize)/2, style)
			rl.EndScissorMode()
		case *ListView:
			e.drawList(wd, style, pad)
		default:
			if n.Text != "" {
				e.drawText(n.Text, x+pad, y+pad, style)
			}
		}
	}
}

func (e *Engine) drawList(l *ListView, style ComputedStyle, pad int32) {
	b := l.Node().Bounds
	rl.BeginScissorMode(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))
	defer rl.EndScissorMode()
	rowH := l.RowHeight
	for row, y := l.firstRow(), b.Y; row < l.Model.Len() && y < b.Y+b.Height; row, y = row+1, y+rowH {
		if row == l.Selected {
			rl.DrawRectangle(int32(b.X), int32(y), int32(b.Width), int32(rowH), style.Accent)
		}
		e.drawText(l.Model.Item(row), int32(b.X)+pad, int32(y)+(int32(rowH)-style.FontSize)/2, style)
	}
}

func (e *Engine) drawText(text string, x, y int32, style ComputedStyle) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(style.FontSize), 1, style.Color)
		return
	}
	rl.DrawText(text, x, y, style.FontSize, style.Color)
}

// HasStylesheet returns whether a CSS file has been loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}
