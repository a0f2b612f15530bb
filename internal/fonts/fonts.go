// Package fonts resolves the configured UI font: either a file path or a family name looked up
// under the fonts directory.
package fonts

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"

	"scene-editor/internal/vfs"
)

// DefaultDir is where fonts are looked up by name.
const DefaultDir = "assets/fonts"

// Exts are the extensions we consider font files.
var Exts = []string{".ttf", ".otf"}

func isFont(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan returns the slash-separated paths, relative to dir, of all font files under dir.
// A missing dir yields no fonts and no error.
func Scan(dir vfs.Dir) ([]string, error) {
	var out []string
	var walk func(rel string) error
	walk = func(rel string) error {
		entries, err := hackpadfs.ReadDir(dir.FS, dir.Path(rel))
		if err != nil {
			if errors.Is(err, hackpadfs.ErrNotExist) {
				return nil
			}
			return err
		}
		for _, e := range entries {
			child := path.Join(rel, e.Name())
			if e.IsDir() {
				if err := walk(child); err != nil {
					return err
				}
				continue
			}
			if isFont(child) {
				out = append(out, child)
			}
		}
		return nil
	}
	return out, walk(".")
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Find returns the path, relative to dir, of the font matching search: an exact relative path
// first, then the first font whose path contains search (ignoring case, spaces, dashes and
// underscores). When several match, one containing "regular" wins.
func Find(dir vfs.Dir, search string) (string, error) {
	search = strings.TrimSpace(search)
	norm := normalizeForMatch(strings.TrimSuffix(search, path.Ext(search)))
	if norm == "" {
		return "", os.ErrNotExist
	}
	list, err := Scan(dir)
	if err != nil {
		return "", err
	}
	var candidates []string
	for _, rel := range list {
		if rel == filepath.ToSlash(search) {
			return rel, nil
		}
		if strings.Contains(normalizeForMatch(rel), norm) {
			candidates = append(candidates, rel)
		}
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), "regular") {
			return c, nil
		}
	}
	return candidates[0], nil
}

// Resolve turns the configured font setting into a file path: an existing file path is used
// as is, anything else is looked up by name under fontDir. Empty means the built-in font.
func Resolve(setting, fontDir string) (string, error) {
	if setting == "" {
		return "", nil
	}
	if st, err := os.Stat(setting); err == nil && !st.IsDir() {
		return setting, nil
	}
	dir, err := vfs.OS(fontDir)
	if err != nil {
		return "", err
	}
	rel, err := Find(dir, setting)
	if err != nil {
		return "", err
	}
	return filepath.Join(fontDir, filepath.FromSlash(rel)), nil
}
