// Package vfs roots a hackpadfs filesystem at a directory so stores and loaders can take
// either the real disk or an in-memory filesystem.
package vfs

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// Dir is a directory inside a hackpadfs filesystem. Root is an fs-style path ("." for the FS root).
type Dir struct {
	FS   hackpadfs.FS
	Root string
}

// Path joins name onto the directory root using slash separators.
func (d Dir) Path(name string) string {
	return path.Join(d.Root, filepath.ToSlash(name))
}

// OS returns the on-disk directory dir (relative paths resolve against the working directory).
func OS(dir string) (Dir, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Dir{}, fmt.Errorf("resolve %s: %w", dir, err)
	}
	fs := osfs.NewFS()
	root, err := fs.FromOSPath(abs)
	if err != nil {
		return Dir{}, fmt.Errorf("map %s: %w", abs, err)
	}
	return Dir{FS: fs, Root: root}, nil
}

// Mem returns an empty in-memory directory. Used by tests and by the --memory flag.
func Mem() (Dir, error) {
	fs, err := mem.NewFS()
	if err != nil {
		return Dir{}, err
	}
	return Dir{FS: fs, Root: "."}, nil
}

// Split turns a file path into the Dir holding it and the base name.
func Split(file string) (Dir, string, error) {
	d, err := OS(filepath.Dir(file))
	if err != nil {
		return Dir{}, "", err
	}
	return d, filepath.Base(file), nil
}
