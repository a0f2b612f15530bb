package editor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
)

// Form holds the raw text of the property editor: 16 matrix cells (row-major), RGBA channels,
// and up to three size fields. Widgets bind directly to these strings.
type Form struct {
	Matrix [16]string
	Color  [4]string
	Size   [3]string
	// Kind decides how many Size fields are in use; empty while nothing is shown.
	Kind primitives.Kind
}

// SizeFields is the number of Size entries in use.
func (f *Form) SizeFields() int {
	if f.Kind == "" {
		return 0
	}
	return f.Kind.SizeFields()
}

// Clear empties every field.
func (f *Form) Clear() {
	*f = Form{}
}

// FieldError names the form field that failed to parse.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Props are the parsed form values ready to apply to an object.
type Props struct {
	Matrix  [16]float32
	Ambient color.RGBA
	Dims    []float32
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// fill copies o into the form.
func (f *Form) fill(o *scene.Object) {
	f.Clear()
	f.Kind = o.Kind
	for i, v := range scene.RowMajor(o.Transform) {
		f.Matrix[i] = formatFloat(v)
	}
	a := o.Material.Ambient
	for i, v := range []uint8{a.R, a.G, a.B, a.A} {
		f.Color[i] = strconv.Itoa(int(v))
	}
	for i, v := range o.Figure.Dims() {
		f.Size[i] = formatFloat(v)
	}
}

// parse reads every field in use. Nothing is returned unless all of them parse.
func (f *Form) parse() (Props, error) {
	var p Props
	for i, s := range f.Matrix {
		v, err := parseFloat(s)
		if err != nil {
			return p, &FieldError{Field: fmt.Sprintf("matrix[%d][%d]", i/4, i%4), Value: s, Err: err}
		}
		p.Matrix[i] = v
	}
	var ch [4]uint8
	for i, s := range f.Color {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
		if err != nil {
			return p, &FieldError{Field: "color." + string("rgba"[i]), Value: s, Err: err}
		}
		ch[i] = uint8(v)
	}
	p.Ambient = color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	labels := f.Kind.SizeLabels()
	for i := 0; i < f.SizeFields(); i++ {
		v, err := parseFloat(f.Size[i])
		if err != nil {
			return p, &FieldError{Field: "size." + strings.ToLower(labels[i]), Value: f.Size[i], Err: err}
		}
		p.Dims = append(p.Dims, v)
	}
	return p, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	f := float32(v)
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return f, nil
}
