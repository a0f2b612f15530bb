package scene

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"scene-editor/internal/primitives"
)

// ErrNoSuchRow is returned when a row index does not name a live object.
var ErrNoSuchRow = errors.New("no object at row")

// Registry is the ordered list of live objects. Row i of Names always labels Objects()[i].
// It is owned by a single editor panel and is not safe for concurrent use.
type Registry struct {
	defaults primitives.Defaults
	objects  []*Object
	names    NameModel
	retired  Arena
}

// NewRegistry returns an empty registry creating objects from defs (nil means builtin defaults).
func NewRegistry(defs primitives.Defaults) *Registry {
	if defs == nil {
		defs = primitives.BuiltinDefaults()
	}
	return &Registry{defaults: defs}
}

// Add appends a new object of kind k with default geometry, identity transform and default
// material, and appends its list row.
func (r *Registry) Add(k primitives.Kind) (*Object, error) {
	t, err := r.defaults.Template(k)
	if err != nil {
		return nil, err
	}
	o := newObject(k, t)
	r.objects = append(r.objects, o)
	r.names.appendRow(o.Name)
	return o, nil
}

// Remove takes the object at row out of the scene: its list row goes, its entity is disabled and
// it moves to the retired arena. Later rows shift down by one.
func (r *Registry) Remove(row int) (*Object, error) {
	o, err := r.At(row)
	if err != nil {
		return nil, err
	}
	r.names.removeRow(row)
	r.retired.retire(o)
	r.objects = append(r.objects[:row], r.objects[row+1:]...)
	return o, nil
}

// At returns the live object at row.
func (r *Registry) At(row int) (*Object, error) {
	if row < 0 || row >= len(r.objects) {
		return nil, fmt.Errorf("%w %d (have %d)", ErrNoSuchRow, row, len(r.objects))
	}
	return r.objects[row], nil
}

// Clear retires every live object.
func (r *Registry) Clear() {
	for _, o := range r.objects {
		r.retired.retire(o)
	}
	r.objects = r.objects[:0]
	r.names.reset()
}

// Len returns the number of live objects.
func (r *Registry) Len() int { return len(r.objects) }

// Objects returns the live objects in row order. The slice is a copy; the objects are not.
func (r *Registry) Objects() []*Object {
	out := make([]*Object, len(r.objects))
	copy(out, r.objects)
	return out
}

// Snapshot returns deep copies of the live objects, safe to read after later mutations.
func (r *Registry) Snapshot() ([]Object, error) {
	out := make([]Object, len(r.objects))
	for i, o := range r.objects {
		if err := copier.CopyWithOption(&out[i], o, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("snapshot row %d: %w", i, err)
		}
		// copier cannot reach through the interface; figures are immutable values anyway.
		out[i].Figure = o.Figure
	}
	return out, nil
}

// Names is the list-view model.
func (r *Registry) Names() *NameModel { return &r.names }

// Retired is the arena of removed objects.
func (r *Registry) Retired() *Arena { return &r.retired }
