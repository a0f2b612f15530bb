// Package editor is the editor panel's application state: the object registry, the persistence
// store, the property form, and which row is being edited. Every operation runs on the UI thread;
// widgets and console commands call into a single Panel.
package editor

import (
	"context"
	"fmt"

	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
	"scene-editor/internal/store"
)

// Logger is the logging surface the panel needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Panel owns the registry and writes the store after every mutation.
type Panel struct {
	reg   *scene.Registry
	store store.Store
	log   Logger
	form  Form

	// target is the row whose values are in the form (-1: none). Any deletion clears it.
	target int
	// selected is the list-view selection (-1: none).
	selected int
}

// New returns a panel over reg persisting to st.
func New(reg *scene.Registry, st store.Store, log Logger) *Panel {
	return &Panel{reg: reg, store: st, log: log, target: -1, selected: -1}
}

// Registry returns the object registry (read access for views and the renderer).
func (p *Panel) Registry() *scene.Registry { return p.reg }

// Form returns the property form widgets bind to.
func (p *Panel) Form() *Form { return &p.form }

// Selected returns the selected list row or -1.
func (p *Panel) Selected() int { return p.selected }

// Target returns the row being edited or -1.
func (p *Panel) Target() int { return p.target }

// Select marks row as selected in the list view. Rows outside the list deselect.
func (p *Panel) Select(row int) {
	if row < 0 || row >= p.reg.Len() {
		row = -1
	}
	p.selected = row
}

// Load replaces the scene with the stored one. Any failure leaves an empty scene and is only
// logged. It returns the number of objects loaded.
func (p *Panel) Load(ctx context.Context) int {
	p.reg.Clear()
	p.resetSelection()
	recs, err := p.store.Load(ctx)
	if err != nil {
		p.log.Warnf("load scene: %v (starting empty)", err)
		return 0
	}
	for i, rec := range recs {
		if err := p.replay(rec); err != nil {
			p.log.Warnf("load scene: record %d: %v (starting empty)", i, err)
			p.reg.Clear()
			return 0
		}
	}
	p.log.Infof("loaded %d object(s)", len(recs))
	if err := p.persist(ctx); err != nil {
		p.log.Errorf("rewrite scene: %v", err)
	}
	return len(recs)
}

func (p *Panel) replay(rec store.Record) error {
	o, err := p.reg.Add(rec.Kind())
	if err != nil {
		return err
	}
	return apply(o, Props{Matrix: rec.Matrix, Ambient: rec.Ambient, Dims: rec.Figure.Dims()})
}

// AddObject creates an object of kind with default geometry and persists the scene.
func (p *Panel) AddObject(ctx context.Context, kind primitives.Kind) (*scene.Object, error) {
	o, err := p.reg.Add(kind)
	if err != nil {
		return nil, err
	}
	p.log.Infof("added %s at row %d", o.Name, p.reg.Len()-1)
	return o, p.persist(ctx)
}

// DeleteObject retires the object at row and persists the scene. row < 0 is a no-op.
// The selection and the edit target are cleared because later rows shift.
func (p *Panel) DeleteObject(ctx context.Context, row int) error {
	if row < 0 {
		p.log.Debugf("delete: nothing selected")
		return nil
	}
	o, err := p.reg.Remove(row)
	if err != nil {
		return err
	}
	p.resetSelection()
	p.log.Infof("deleted %s from row %d", o.Name, row)
	return p.persist(ctx)
}

// ShowInfo copies the object at row into the form and makes it the edit target. row < 0 is a no-op.
func (p *Panel) ShowInfo(row int) error {
	if row < 0 {
		p.log.Debugf("show info: nothing selected")
		return nil
	}
	o, err := p.reg.At(row)
	if err != nil {
		return err
	}
	p.form.fill(o)
	p.target = row
	p.log.Debugf("editing %s at row %d", o.Name, row)
	return nil
}

// UpdateInfo parses the form and writes it into the edit target, then persists. Without a target it
// is a no-op. A *FieldError leaves the object untouched.
func (p *Panel) UpdateInfo(ctx context.Context) error {
	if p.target < 0 {
		p.log.Debugf("update info: no edit target")
		return nil
	}
	o, err := p.reg.At(p.target)
	if err != nil {
		return err
	}
	props, err := p.form.parse()
	if err != nil {
		return err
	}
	if err := apply(o, props); err != nil {
		return err
	}
	p.log.Infof("updated %s at row %d", o.Name, p.target)
	return p.persist(ctx)
}

// ClearScene retires every object and persists the empty scene.
func (p *Panel) ClearScene(ctx context.Context) error {
	p.reg.Clear()
	p.resetSelection()
	p.log.Infof("scene cleared")
	return p.persist(ctx)
}

// Save writes the current scene without changing it.
func (p *Panel) Save(ctx context.Context) error {
	return p.persist(ctx)
}

// Records converts a snapshot of the live objects into store records in row order.
func (p *Panel) Records() ([]store.Record, error) {
	objs, err := p.reg.Snapshot()
	if err != nil {
		return nil, err
	}
	recs := make([]store.Record, len(objs))
	for i, o := range objs {
		recs[i] = store.Record{
			Matrix:  scene.RowMajor(o.Transform),
			Ambient: o.Material.Ambient,
			Figure:  o.Figure,
		}
	}
	return recs, nil
}

func (p *Panel) persist(ctx context.Context) error {
	recs, err := p.Records()
	if err == nil {
		err = p.store.Dump(ctx, recs)
	}
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

func (p *Panel) resetSelection() {
	p.target = -1
	p.selected = -1
	p.form.Clear()
}

// apply overwrites o's transform, material and figure. Dims must match o's kind; otherwise o is
// left untouched.
func apply(o *scene.Object, props Props) error {
	f, err := o.Figure.WithDims(props.Dims)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Name, err)
	}
	o.Transform = scene.FromRowMajor(props.Matrix)
	o.Material.Ambient = props.Ambient
	o.Figure = f
	return nil
}
