// Package editorui lays out the editor panel widgets and binds them to an editor.Panel.
package editorui

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/editor"
	"scene-editor/internal/primitives"
	"scene-editor/internal/ui"
)

//go:embed default.css
var defaultCSS string

const (
	margin      = 10
	gap         = 6
	buttonH     = 30
	fieldH      = 24
	labelH      = 22
	listH       = 180
	statusLines = 2
)

// View is the editor panel: buttons, the object list, the property form and a status line.
type View struct {
	ctx   context.Context
	panel *editor.Panel
	log   editor.Logger
	eng   *ui.Engine
	width int32

	bg         *ui.Node
	title      *ui.Node
	addSphere  *ui.Button
	addBox     *ui.Button
	list       *ui.ListView
	deleteBtn  *ui.Button
	showBtn    *ui.Button
	matrixHdr  *ui.Node
	matrix     [16]*ui.TextField
	colorHdr   *ui.Node
	color      [4]*ui.TextField
	sizeHdr    *ui.Node
	sizeLabels [3]*ui.Node
	size       [3]*ui.TextField
	updateBtn  *ui.Button
	status     *ui.Node
}

// New builds the panel widgets, registers them with eng and binds them to p. The panel is
// width pixels wide and sits at the right edge of the window.
func New(ctx context.Context, eng *ui.Engine, p *editor.Panel, log editor.Logger, width int32) *View {
	v := &View{ctx: ctx, panel: p, log: log, eng: eng, width: width}
	form := p.Form()

	v.bg = ui.NewNode("panel", "panel", "editorPanel", "")
	v.title = ui.NewNode("label", "title", "sceneTitle", "Scene objects")
	v.addSphere = ui.NewButton("addSphere", "Add sphere", func() { v.add(primitives.KindSphere) })
	v.addBox = ui.NewButton("addBox", "Add box", func() { v.add(primitives.KindBox) })
	v.list = ui.NewListView("objects", p.Registry().Names(), p.Select)
	v.deleteBtn = ui.NewButton("deleteObject", "Delete", v.deleteSelected)
	v.showBtn = ui.NewButton("showInfo", "Show info", v.showSelected)
	v.matrixHdr = ui.NewNode("label", "label", "transformLabel", "Transform")
	for i := range v.matrix {
		v.matrix[i] = ui.NewTextField(fmt.Sprintf("m%d%d", i/4, i%4), &form.Matrix[i])
	}
	v.colorHdr = ui.NewNode("label", "label", "colorLabel", "Ambient (R G B A)")
	for i := range v.color {
		v.color[i] = ui.NewTextField(fmt.Sprintf("color%d", i), &form.Color[i])
	}
	v.sizeHdr = ui.NewNode("label", "label", "sizeLabel", "Size")
	for i := range v.size {
		v.sizeLabels[i] = ui.NewNode("label", "label", fmt.Sprintf("sizeLabel%d", i), "")
		v.size[i] = ui.NewTextField(fmt.Sprintf("size%d", i), &form.Size[i])
	}
	v.updateBtn = ui.NewButton("updateInfo", "Update", v.update)
	v.status = ui.NewNode("label", "status", "status", "")

	eng.AddNode(v.bg)
	eng.AddNode(v.title)
	eng.AddWidget(v.addSphere)
	eng.AddWidget(v.addBox)
	eng.AddWidget(v.list)
	eng.AddWidget(v.deleteBtn)
	eng.AddWidget(v.showBtn)
	eng.AddNode(v.matrixHdr)
	for _, f := range v.matrix {
		eng.AddWidget(f)
	}
	eng.AddNode(v.colorHdr)
	for _, f := range v.color {
		eng.AddWidget(f)
	}
	eng.AddNode(v.sizeHdr)
	for i := range v.size {
		eng.AddNode(v.sizeLabels[i])
		eng.AddWidget(v.size[i])
	}
	eng.AddWidget(v.updateBtn)
	eng.AddNode(v.status)
	v.Sync()
	return v
}

// Width is the panel width in pixels.
func (v *View) Width() int32 { return v.width }

// Status returns the status line text.
func (v *View) Status() string { return v.status.Text }

// SetStatus shows msg in the status line.
func (v *View) SetStatus(msg string) {
	v.status.Text = msg
}

// report shows err in the status line and logs it. A *editor.FieldError is user input, so it is
// logged as a warning.
func (v *View) report(op string, err error) {
	msg := fmt.Sprintf("%s: %v", op, err)
	v.SetStatus(msg)
	var fe *editor.FieldError
	if errors.As(err, &fe) {
		v.log.Warnf("%s", msg)
		return
	}
	v.log.Errorf("%s", msg)
}

func (v *View) add(kind primitives.Kind) {
	o, err := v.panel.AddObject(v.ctx, kind)
	if err != nil {
		v.report("add "+string(kind), err)
		return
	}
	v.SetStatus("added " + o.Name)
}

func (v *View) deleteSelected() {
	row := v.panel.Selected()
	if err := v.panel.DeleteObject(v.ctx, row); err != nil {
		v.report("delete", err)
		return
	}
	if row >= 0 {
		v.SetStatus(fmt.Sprintf("deleted row %d", row))
	}
}

func (v *View) showSelected() {
	if err := v.panel.ShowInfo(v.panel.Selected()); err != nil {
		v.report("show info", err)
		return
	}
	v.SetStatus("")
}

func (v *View) update() {
	if v.panel.Target() < 0 {
		return
	}
	if err := v.panel.UpdateInfo(v.ctx); err != nil {
		v.report("update", err)
		return
	}
	v.SetStatus(fmt.Sprintf("updated row %d", v.panel.Target()))
}

// Sync copies panel state the widgets display but do not own: the list selection and which
// size fields the edited kind uses. Call once per frame before drawing.
func (v *View) Sync() {
	v.list.Selected = v.panel.Selected()
	form := v.panel.Form()
	n := form.SizeFields()
	var labels []string
	if n > 0 {
		labels = form.Kind.SizeLabels()
	}
	v.sizeHdr.Hidden = n == 0
	for i := range v.size {
		hidden := i >= n
		v.size[i].Node().Hidden = hidden
		v.sizeLabels[i].Hidden = hidden
		if !hidden {
			v.sizeLabels[i].Text = labels[i]
		}
	}
	hasForm := form.Kind != ""
	for _, f := range v.matrix {
		f.Node().Hidden = !hasForm
	}
	for _, f := range v.color {
		f.Node().Hidden = !hasForm
	}
	v.matrixHdr.Hidden = !hasForm
	v.colorHdr.Hidden = !hasForm
	v.updateBtn.Node().Hidden = !hasForm
}

// Layout places every widget for a screen of the given size. Call when the window is resized.
func (v *View) Layout(screenW, screenH int32) {
	x0 := float32(screenW - v.width)
	inner := float32(v.width) - 2*margin
	x := x0 + margin
	y := float32(margin)

	v.bg.Bounds = rl.NewRectangle(x0, 0, float32(v.width), float32(screenH))
	v.title.Bounds = rl.NewRectangle(x, y, inner, labelH)
	y += labelH + gap

	half := (inner - gap) / 2
	v.addSphere.Node().Bounds = rl.NewRectangle(x, y, half, buttonH)
	v.addBox.Node().Bounds = rl.NewRectangle(x+half+gap, y, half, buttonH)
	y += buttonH + gap

	v.list.Node().Bounds = rl.NewRectangle(x, y, inner, listH)
	y += listH + gap

	v.deleteBtn.Node().Bounds = rl.NewRectangle(x, y, half, buttonH)
	v.showBtn.Node().Bounds = rl.NewRectangle(x+half+gap, y, half, buttonH)
	y += buttonH + 2*gap

	cell := (inner - 3*gap) / 4
	v.matrixHdr.Bounds = rl.NewRectangle(x, y, inner, labelH)
	y += labelH
	for i, f := range v.matrix {
		r, c := float32(i/4), float32(i%4)
		f.Node().Bounds = rl.NewRectangle(x+c*(cell+gap), y+r*(fieldH+gap), cell, fieldH)
	}
	y += 4*(fieldH+gap) + gap

	v.colorHdr.Bounds = rl.NewRectangle(x, y, inner, labelH)
	y += labelH
	for i, f := range v.color {
		f.Node().Bounds = rl.NewRectangle(x+float32(i)*(cell+gap), y, cell, fieldH)
	}
	y += fieldH + 2*gap

	third := (inner - 2*gap) / 3
	v.sizeHdr.Bounds = rl.NewRectangle(x, y, inner, labelH)
	y += labelH
	for i := range v.size {
		sx := x + float32(i)*(third+gap)
		v.sizeLabels[i].Bounds = rl.NewRectangle(sx, y, third, labelH)
		v.size[i].Node().Bounds = rl.NewRectangle(sx, y+labelH, third, fieldH)
	}
	y += labelH + fieldH + 2*gap

	v.updateBtn.Node().Bounds = rl.NewRectangle(x, y, inner, buttonH)
	y += buttonH + gap

	v.status.Bounds = rl.NewRectangle(x, y, inner, statusLines*labelH)
	v.eng.Invalidate()
}

// LoadStyle loads the stylesheet at path into eng, falling back to the built-in style when the
// file is missing. A broken or empty file also falls back, and its error is returned.
func LoadStyle(eng *ui.Engine, path string) error {
	var fileErr error
	if path != "" {
		fileErr = eng.LoadCSS(path)
		if fileErr == nil {
			if eng.HasStylesheet() {
				return nil
			}
			fileErr = fmt.Errorf("%s: no rules", path)
		}
		if errors.Is(fileErr, os.ErrNotExist) {
			fileErr = nil
		}
	}
	sheet, err := ui.ParseCSS(defaultCSS)
	if err != nil {
		return err
	}
	eng.SetStylesheet(sheet)
	return fileErr
}
