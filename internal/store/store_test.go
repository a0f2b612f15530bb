package store

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"

	"scene-editor/internal/primitives"
	"scene-editor/internal/vfs"
)

func sampleRecords() []Record {
	ident := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	moved := ident
	moved[3], moved[7], moved[11] = 5, -2, 0.5
	return []Record{
		{Matrix: ident, Ambient: primitives.DefaultAmbient, Figure: primitives.Sphere{Radius: 3}},
		{Matrix: moved, Ambient: color.RGBA{R: 10, G: 20, B: 30, A: 40}, Figure: primitives.Box{X: 1, Y: 2, Z: 3}},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	data, err := Encode(sampleRecords())
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestCodecEmpty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	data, err := Encode(sampleRecords())
	require.NoError(t, err)

	_, err = Decode(data[:len(data)-5])
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decode([]byte("not a scene"))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	data, err := Encode(sampleRecords())
	require.NoError(t, err)

	_, err = Decode(append(data, "JUNKJUNK"...))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsNewerVersion(t *testing.T) {
	b := append([]byte(nil), magic...)
	b = msgp.AppendMapHeader(b, 1)
	b = msgp.AppendString(b, "version")
	b = msgp.AppendInt(b, SchemaVersion+1)

	_, err := Decode(b)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestEncodeRejectsNonFinite(t *testing.T) {
	recs := sampleRecords()
	recs[0].Matrix[0] = float32(math.NaN())
	_, err := Encode(recs)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir, err := vfs.Mem()
	require.NoError(t, err)
	s := NewFileStore(dir, "data/scene.bin")

	_, err = s.Load(ctx)
	assert.Error(t, err, "missing file")

	require.NoError(t, s.Dump(ctx, sampleRecords()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)

	require.NoError(t, s.Dump(ctx, sampleRecords()[1:]))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, primitives.KindBox, got[0].Kind())

	_, err = hackpadfs.Stat(dir.FS, dir.Path("data/scene.bin.tmp"))
	assert.Error(t, err, "temp file renamed away")
}

func TestFileStoreCorrupt(t *testing.T) {
	dir, err := vfs.Mem()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.WriteFullFile(dir.FS, dir.Path("scene.bin"), []byte{0xff, 0x00}, 0o644))

	_, err = NewFileStore(dir, "scene.bin").Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "scene.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Dump(ctx, sampleRecords()))
	require.NoError(t, s.Close())

	st, err := Open(BackendSQLite, path)
	require.NoError(t, err)
	defer st.Close()
	got, err = st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestSQLiteStoreCorrupt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scene.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not an sqlite database, just junk bytes"), 0o644))

	s, err := OpenSQLite(path)
	require.NoError(t, err, "opening does not read the file")
	defer s.Close()

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Error(t, s.Dump(ctx, sampleRecords()))
}

func TestSQLiteStoreNewerVersion(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "scene.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.db.ExecContext(ctx, `PRAGMA user_version = 99`)
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.ErrorIs(t, s.Dump(ctx, nil), ErrUnsupportedVersion)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("tape", "x")
	assert.Error(t, err)
}
