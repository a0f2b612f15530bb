// Package store persists the editor's scene: an ordered list of records, one per live object.
// Two backends exist: a single msgpack file (FileStore) and an SQLite database (SQLiteStore).
package store

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"scene-editor/internal/primitives"
)

// SchemaVersion is written into every store and checked on load.
const SchemaVersion = 1

var (
	// ErrCorrupt is returned when stored data cannot be decoded.
	ErrCorrupt = errors.New("scene store corrupt")
	// ErrUnsupportedVersion is returned for a store written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported scene schema version")
)

// Record is the persisted state of one object. Figure is the tag: a primitives.Sphere record
// carries a radius, a primitives.Box record carries three extents.
type Record struct {
	Matrix  [16]float32 // row-major
	Ambient color.RGBA
	Figure  primitives.Figure
}

// Kind returns the record's type tag.
func (r Record) Kind() primitives.Kind {
	if r.Figure == nil {
		return ""
	}
	return r.Figure.Kind()
}

// Validate rejects records without a figure or with non-finite numbers.
func (r Record) Validate() error {
	if r.Figure == nil {
		return fmt.Errorf("%w: record has no figure", ErrCorrupt)
	}
	for i, v := range r.Matrix {
		if !finite(v) {
			return fmt.Errorf("%w: matrix[%d] is %v", ErrCorrupt, i, v)
		}
	}
	for i, v := range r.Figure.Dims() {
		if !finite(v) {
			return fmt.Errorf("%w: size[%d] is %v", ErrCorrupt, i, v)
		}
	}
	return nil
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// Store loads and overwrites the persisted scene. Dump replaces everything previously stored.
type Store interface {
	Load(ctx context.Context) ([]Record, error)
	Dump(ctx context.Context, recs []Record) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}
