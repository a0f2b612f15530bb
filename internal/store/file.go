package store

import (
	"context"
	"fmt"
	"path"

	"github.com/hack-pad/hackpadfs"

	"scene-editor/internal/vfs"
)

// FileStore keeps the scene in one msgpack file. Dump writes a sibling temp file and renames it
// over the old one so a crash mid-write leaves the previous scene intact.
type FileStore struct {
	dir  vfs.Dir
	name string
}

// NewFileStore returns a store for file name inside dir.
func NewFileStore(dir vfs.Dir, name string) *FileStore {
	return &FileStore{dir: dir, name: dir.Path(name)}
}

// OpenFile returns a FileStore for an on-disk path such as data/scene.bin.
func OpenFile(file string) (*FileStore, error) {
	dir, base, err := vfs.Split(file)
	if err != nil {
		return nil, err
	}
	return NewFileStore(dir, base), nil
}

// Load reads and decodes the scene file.
func (s *FileStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := hackpadfs.ReadFile(s.dir.FS, s.name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	return Decode(data)
}

// Dump encodes recs and replaces the scene file.
func (s *FileStore) Dump(ctx context.Context, recs []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(recs)
	if err != nil {
		return err
	}
	if dir := path.Dir(s.name); dir != "." {
		if err := hackpadfs.MkdirAll(s.dir.FS, dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp := s.name + ".tmp"
	if err := hackpadfs.WriteFullFile(s.dir.FS, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := hackpadfs.Rename(s.dir.FS, tmp, s.name); err != nil {
		return fmt.Errorf("replace %s: %w", s.name, err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *FileStore) Close() error { return nil }
