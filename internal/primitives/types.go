// Package primitives describes the geometry of the shapes the editor can place: spheres and boxes.
// Figures are plain values; GPU meshes are built from them by the render package.
package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name is neither "sphere" nor "box".
var ErrUnknownKind = errors.New("unknown primitive kind")

// Kind is the type tag of a scene object. It never changes after creation.
type Kind string

const (
	KindSphere Kind = "sphere"
	KindBox    Kind = "box"
)

// Kinds lists every supported kind in button order.
var Kinds = []Kind{KindSphere, KindBox}

// ParseKind accepts "sphere" or "box" (case-insensitive, surrounding space ignored).
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSphere:
		return KindSphere, nil
	case KindBox:
		return KindBox, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// SizeFields is the number of size values a figure of this kind carries: 1 for a sphere, 3 for a box.
func (k Kind) SizeFields() int {
	if k == KindBox {
		return 3
	}
	return 1
}

// SizeLabels names the size fields shown in the editor form.
func (k Kind) SizeLabels() []string {
	if k == KindBox {
		return []string{"X", "Y", "Z"}
	}
	return []string{"Radius"}
}

// Figure is the geometry of a scene object. Sphere and Box are the only implementations,
// so the concrete type doubles as the record tag when a scene is persisted.
type Figure interface {
	Kind() Kind
	// Dims returns the size values in field order (radius, or x/y/z extents).
	Dims() []float32
	// WithDims returns a copy resized to dims. len(dims) must equal Kind().SizeFields().
	WithDims(dims []float32) (Figure, error)
}

// Sphere is a sphere mesh descriptor.
type Sphere struct {
	Radius float32
}

func (Sphere) Kind() Kind { return KindSphere }

func (s Sphere) Dims() []float32 { return []float32{s.Radius} }

func (s Sphere) WithDims(dims []float32) (Figure, error) {
	if len(dims) != 1 {
		return s, fmt.Errorf("sphere: want 1 size value, got %d", len(dims))
	}
	return Sphere{Radius: dims[0]}, nil
}

// Box is a cuboid mesh descriptor with one extent per axis.
type Box struct {
	X, Y, Z float32
}

func (Box) Kind() Kind { return KindBox }

func (b Box) Dims() []float32 { return []float32{b.X, b.Y, b.Z} }

func (b Box) WithDims(dims []float32) (Figure, error) {
	if len(dims) != 3 {
		return b, fmt.Errorf("box: want 3 size values, got %d", len(dims))
	}
	return Box{X: dims[0], Y: dims[1], Z: dims[2]}, nil
}

// NewFigure builds a figure of kind k from dims.
func NewFigure(k Kind, dims []float32) (Figure, error) {
	switch k {
	case KindSphere:
		return Sphere{}.WithDims(dims)
	case KindBox:
		return Box{}.WithDims(dims)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}
