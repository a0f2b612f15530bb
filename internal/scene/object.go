// Package scene holds the editor's object model: scene objects, the ordered registry of live objects,
// the name list shown in the list view, and the arena of retired objects awaiting release.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"scene-editor/internal/primitives"
)

// Material carries the flat, lighting-independent color of an object's surface.
type Material struct {
	Ambient color.RGBA
}

// Entity anchors an object in the rendered scene. A disabled entity is not drawn.
type Entity struct {
	ID      uuid.UUID
	Enabled bool
}

// Object is one placed primitive.
type Object struct {
	Kind      primitives.Kind
	Name      string
	Figure    primitives.Figure
	Transform mgl32.Mat4
	Material  Material
	Entity    Entity
}

// DefaultName is the label a new object of kind k gets in the list view.
func DefaultName(k primitives.Kind) string {
	return "new_" + string(k)
}

func newObject(k primitives.Kind, t primitives.Template) *Object {
	return &Object{
		Kind:      k,
		Name:      DefaultName(k),
		Figure:    t.Figure,
		Transform: mgl32.Ident4(),
		Material:  Material{Ambient: t.Ambient},
		Entity:    Entity{ID: uuid.New(), Enabled: true},
	}
}

// RowMajor flattens m row by row: out[r*4+c] = m[r][c].
func RowMajor(m mgl32.Mat4) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.At(r, c)
		}
	}
	return out
}

// FromRowMajor is the inverse of RowMajor.
func FromRowMajor(v [16]float32) mgl32.Mat4 {
	var m mgl32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, v[r*4+c])
		}
	}
	return m
}
