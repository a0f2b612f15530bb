package store

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tinylib/msgp/msgp"

	"scene-editor/internal/primitives"
)

// magic prefixes every scene file so unrelated files are rejected before decoding.
var magic = []byte("SCNE")

// Encode writes recs as a versioned msgpack document:
//
//	{"version": 1, "objects": [{"type", "matrix", "ambient", "radius"|"extents"}, ...]}
func Encode(recs []Record) ([]byte, error) {
	b := append([]byte(nil), magic...)
	b = msgp.AppendMapHeader(b, 2)
	b = msgp.AppendString(b, "version")
	b = msgp.AppendInt(b, SchemaVersion)
	b = msgp.AppendString(b, "objects")
	b = msgp.AppendArrayHeader(b, uint32(len(recs)))
	for i, r := range recs {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		b = appendRecord(b, r)
	}
	return b, nil
}

func appendRecord(b []byte, r Record) []byte {
	b = msgp.AppendMapHeader(b, 4)
	b = msgp.AppendString(b, "type")
	b = msgp.AppendString(b, string(r.Kind()))
	b = msgp.AppendString(b, "matrix")
	b = msgp.AppendArrayHeader(b, 16)
	for _, v := range r.Matrix {
		b = msgp.AppendFloat32(b, v)
	}
	b = msgp.AppendString(b, "ambient")
	b = msgp.AppendArrayHeader(b, 4)
	for _, v := range []uint8{r.Ambient.R, r.Ambient.G, r.Ambient.B, r.Ambient.A} {
		b = msgp.AppendUint8(b, v)
	}
	switch f := r.Figure.(type) {
	case primitives.Sphere:
		b = msgp.AppendString(b, "radius")
		b = msgp.AppendFloat32(b, f.Radius)
	case primitives.Box:
		b = msgp.AppendString(b, "extents")
		b = msgp.AppendArrayHeader(b, 3)
		b = msgp.AppendFloat32(b, f.X)
		b = msgp.AppendFloat32(b, f.Y)
		b = msgp.AppendFloat32(b, f.Z)
	}
	return b
}

// Decode parses a document produced by Encode. Unknown keys are skipped.
func Decode(data []byte) ([]Record, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, fmt.Errorf("%w: missing header", ErrCorrupt)
	}
	b := data[len(magic):]
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return nil, corrupt(err)
	}
	version := -1
	var recs []Record
	for ; n > 0; n-- {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return nil, corrupt(err)
		}
		switch key {
		case "version":
			version, b, err = msgp.ReadIntBytes(b)
			if err == nil && version > SchemaVersion {
				return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
			}
		case "objects":
			recs, b, err = readRecords(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return nil, corrupt(err)
		}
	}
	if version < 1 {
		return nil, fmt.Errorf("%w: missing version", ErrCorrupt)
	}
	if len(b) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(b))
	}
	return recs, nil
}

func readRecords(b []byte) ([]Record, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, b, err
	}
	recs := make([]Record, 0, n)
	for i := uint32(0); i < n; i++ {
		var r Record
		r, b, err = readRecord(b)
		if err != nil {
			return nil, b, fmt.Errorf("object %d: %w", i, err)
		}
		recs = append(recs, r)
	}
	return recs, b, nil
}

func readRecord(b []byte) (Record, []byte, error) {
	var (
		r       Record
		kind    string
		dims    []float32
		ambient []float32
		matrix  []float32
	)
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return r, b, err
	}
	for ; n > 0; n-- {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return r, b, err
		}
		switch key {
		case "type":
			kind, b, err = msgp.ReadStringBytes(b)
		case "matrix":
			matrix, b, err = readFloats(b, 16)
		case "ambient":
			ambient, b, err = readChannels(b)
		case "radius":
			var v float32
			v, b, err = msgp.ReadFloat32Bytes(b)
			dims = []float32{v}
		case "extents":
			dims, b, err = readFloats(b, 3)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return r, b, fmt.Errorf("%s: %w", key, err)
		}
	}
	k, err := primitives.ParseKind(kind)
	if err != nil {
		return r, b, err
	}
	if matrix == nil || ambient == nil {
		return r, b, fmt.Errorf("missing matrix or ambient")
	}
	r.Figure, err = primitives.NewFigure(k, dims)
	if err != nil {
		return r, b, err
	}
	copy(r.Matrix[:], matrix)
	r.Ambient = color.RGBA{R: uint8(ambient[0]), G: uint8(ambient[1]), B: uint8(ambient[2]), A: uint8(ambient[3])}
	return r, b, r.Validate()
}

func readFloats(b []byte, want uint32) ([]float32, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, b, err
	}
	if n != want {
		return nil, b, fmt.Errorf("want %d values, got %d", want, n)
	}
	out := make([]float32, n)
	for i := range out {
		out[i], b, err = msgp.ReadFloat32Bytes(b)
		if err != nil {
			return nil, b, err
		}
	}
	return out, b, nil
}

func readChannels(b []byte) ([]float32, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, b, err
	}
	if n != 4 {
		return nil, b, fmt.Errorf("want 4 channels, got %d", n)
	}
	out := make([]float32, n)
	for i := range out {
		var v uint8
		v, b, err = msgp.ReadUint8Bytes(b)
		if err != nil {
			return nil, b, err
		}
		out[i] = float32(v)
	}
	return out, b, nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %w", ErrCorrupt, err)
}
