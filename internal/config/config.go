// Package config loads the editor's preferences from config/editor.yaml with EDITOR_* environment
// overrides. Scene data is not kept here; it lives in the store.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"scene-editor/internal/env"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/editor.yaml"

// Window controls the OS window.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Store selects the persistence backend ("file" or "sqlite") and its path.
type Store struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// UI controls the editor panel look.
type UI struct {
	Stylesheet      string `yaml:"stylesheet"`
	WatchStylesheet bool   `yaml:"watch_stylesheet"`
	Font            string `yaml:"font,omitempty"`
	PanelWidth      int    `yaml:"panel_width"`
}

// Viewport holds the toggles the console can change; they are saved on exit.
type Viewport struct {
	GridVisible  bool `yaml:"grid_visible"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Log controls the log file.
type Log struct {
	Path  string `yaml:"path"`
	Debug bool   `yaml:"debug"`
}

// Config is the whole preferences file.
type Config struct {
	Window        Window   `yaml:"window"`
	Store         Store    `yaml:"store"`
	UI            UI       `yaml:"ui"`
	Viewport      Viewport `yaml:"viewport"`
	Log           Log      `yaml:"log"`
	PrimitivesDir string   `yaml:"primitives_dir"`
}

// Default returns the preferences used when no file exists.
func Default() Config {
	return Config{
		Window:        Window{Width: 1280, Height: 720, Title: "Scene Editor", TargetFPS: 60},
		Store:         Store{Backend: "file", Path: "data/scene.bin"},
		UI:            UI{Stylesheet: "assets/ui/editor.css", WatchStylesheet: true, PanelWidth: 360},
		Viewport:      Viewport{GridVisible: true},
		Log:           Log{Path: "logs/editor.txt"},
		PrimitivesDir: "assets/primitives",
	}
}

// Load reads path over Default and then applies environment overrides. A missing file is not an
// error. A malformed file returns Default (with overrides) together with the parse error.
func Load(path string) (Config, error) {
	c, err := LoadFile(path)
	c.applyEnv()
	return c, err
}

// LoadFile is Load without the environment overrides: it returns exactly what the file says,
// which is what Save should write back.
func LoadFile(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = nil
	case err != nil:
		err = fmt.Errorf("read %s: %w", path, err)
	default:
		if uerr := yaml.Unmarshal(data, &c); uerr != nil {
			c = Default()
			err = fmt.Errorf("parse %s: %w", path, uerr)
		}
	}
	return c, err
}

func (c *Config) applyEnv() {
	c.Store.Backend = env.String("EDITOR_STORE_BACKEND", c.Store.Backend)
	c.Store.Path = env.String("EDITOR_STORE_PATH", c.Store.Path)
	c.Log.Path = env.String("EDITOR_LOG_PATH", c.Log.Path)
	c.Log.Debug = env.Bool("EDITOR_LOG_DEBUG", c.Log.Debug)
	c.Window.Width = env.Int("EDITOR_WINDOW_WIDTH", c.Window.Width)
	c.Window.Height = env.Int("EDITOR_WINDOW_HEIGHT", c.Window.Height)
	c.UI.Stylesheet = env.String("EDITOR_STYLESHEET", c.UI.Stylesheet)
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
