package primitives

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"gopkg.in/yaml.v3"

	"scene-editor/internal/vfs"
)

// DefaultAmbient is the ambient channel of a fresh material: a near-black flat color.
var DefaultAmbient = color.RGBA{R: 13, G: 13, B: 13, A: 255}

// PrimitiveDef is the YAML definition of a primitive's defaults (e.g. assets/primitives/box.yaml).
// Size holds 1 value for a sphere and 3 for a box; Ambient is #RRGGBB or #RRGGBBAA.
type PrimitiveDef struct {
	Type    string    `yaml:"type"`
	Size    []float32 `yaml:"size,omitempty"`
	Ambient string    `yaml:"ambient,omitempty"`
}

// Template is what a new object of one kind starts with.
type Template struct {
	Figure  Figure
	Ambient color.RGBA
}

// Defaults maps each kind to its creation template.
type Defaults map[Kind]Template

// BuiltinDefaults returns sphere radius 3 and box extents 4,4,4 with DefaultAmbient.
func BuiltinDefaults() Defaults {
	return Defaults{
		KindSphere: {Figure: Sphere{Radius: 3}, Ambient: DefaultAmbient},
		KindBox:    {Figure: Box{X: 4, Y: 4, Z: 4}, Ambient: DefaultAmbient},
	}
}

// Template returns the template for k, falling back to the builtin one.
func (d Defaults) Template(k Kind) (Template, error) {
	if t, ok := d[k]; ok {
		return t, nil
	}
	if t, ok := BuiltinDefaults()[k]; ok {
		return t, nil
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// LoadDefaults reads <kind>.yaml from dir for every kind. A missing file keeps the builtin template;
// a malformed one is an error and the returned Defaults still hold the builtin values for it.
func LoadDefaults(dir vfs.Dir) (Defaults, error) {
	out := BuiltinDefaults()
	var errs []error
	for _, k := range Kinds {
		name := dir.Path(string(k) + ".yaml")
		data, err := hackpadfs.ReadFile(dir.FS, name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("read %s: %w", name, err))
			}
			continue
		}
		t, err := parseDef(k, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		out[k] = t
	}
	return out, errors.Join(errs...)
}

func parseDef(k Kind, data []byte) (Template, error) {
	var def PrimitiveDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Template{}, err
	}
	if def.Type != "" && Kind(def.Type) != k {
		return Template{}, fmt.Errorf("type %q does not match file kind %q", def.Type, k)
	}
	t := BuiltinDefaults()[k]
	if len(def.Size) > 0 {
		f, err := t.Figure.WithDims(def.Size)
		if err != nil {
			return Template{}, err
		}
		t.Figure = f
	}
	if def.Ambient != "" {
		c, err := ParseHexRGBA(def.Ambient)
		if err != nil {
			return Template{}, fmt.Errorf("ambient: %w", err)
		}
		t.Ambient = c
	}
	return t, nil
}

// ParseHexRGBA parses #RRGGBB (alpha 255) or #RRGGBBAA.
func ParseHexRGBA(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
