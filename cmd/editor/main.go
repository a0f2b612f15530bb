package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/config"
	"scene-editor/internal/debug"
	"scene-editor/internal/editor"
	"scene-editor/internal/editorui"
	"scene-editor/internal/env"
	"scene-editor/internal/fonts"
	"scene-editor/internal/graphics"
	"scene-editor/internal/logger"
	"scene-editor/internal/primitives"
	"scene-editor/internal/render"
	"scene-editor/internal/scene"
	"scene-editor/internal/store"
	"scene-editor/internal/terminal"
	"scene-editor/internal/ui"
	"scene-editor/internal/vfs"
	"scene-editor/internal/viewport"
)

func main() {
	_ = env.Load(".env")

	configPath := flag.String("config", env.String("EDITOR_CONFIG", config.DefaultPath), "preferences file")
	memory := flag.Bool("memory", false, "keep the scene in memory only (nothing is saved)")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = logger.DefaultPath
	}
	log := logger.New(logPath, cfg.Log.Debug)
	if cfgErr != nil {
		log.Warnf("config: %v (using defaults)", cfgErr)
	}

	st, err := openStore(cfg.Store, *memory)
	if err != nil {
		log.Errorf("open store: %v", err)
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	reg := scene.NewRegistry(loadDefaults(cfg.PrimitivesDir, log))
	panel := editor.New(reg, st, log)
	panel.Load(ctx)

	vp := viewport.New()
	vp.SetGridVisible(cfg.Viewport.GridVisible)
	dbg := debug.New()
	dbg.SetShowFPS(cfg.Viewport.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Viewport.ShowMemAlloc)
	rend := render.New()

	cmds := commands.NewRegistry()
	editor.RegisterCommands(ctx, cmds, panel, log.Log)
	registerViewCommands(cmds, vp, dbg)
	term := terminal.New(log, cmds)

	eng := ui.New()
	if err := editorui.LoadStyle(eng, cfg.UI.Stylesheet); err != nil {
		log.Warnf("stylesheet %s: %v (using built-in style)", cfg.UI.Stylesheet, err)
	}
	var watcher *ui.Watcher
	if cfg.UI.WatchStylesheet && cfg.UI.Stylesheet != "" {
		if _, err := os.Stat(cfg.UI.Stylesheet); err == nil {
			if watcher, err = ui.Watch(cfg.UI.Stylesheet); err != nil {
				log.Warnf("watch stylesheet: %v", err)
			}
		}
	}
	view := editorui.New(ctx, eng, panel, log, int32(cfg.UI.PanelWidth))

	var screenW, screenH int32
	setup := func() {
		if path, err := fonts.Resolve(cfg.UI.Font, fonts.DefaultDir); err != nil {
			log.Warnf("font %q: %v", cfg.UI.Font, err)
		} else if path != "" {
			if err := eng.LoadFont(path); err != nil {
				log.Warnf("load font %s: %v", path, err)
			}
		}
		term.SetFont(eng.Font())
		dbg.SetFont(eng.Font())
	}
	update := func() {
		if w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()); w != screenW || h != screenH {
			screenW, screenH = w, h
			view.Layout(w, h)
			vp.Bounds = viewport.Layout(w, h, view.Width())
		}

		in := ui.PollInput()
		if in.Escape && eng.Focused() == nil {
			term.Toggle()
		}
		if term.IsOpen() {
			term.Update(in.Chars)
			in.Chars, in.Backspace, in.Enter, in.Tab = nil, false, false, false
		}
		eng.Update(in)
		if watcher != nil {
			if reloaded, err := eng.ReloadIfChanged(watcher); err != nil {
				log.Warnf("reload stylesheet: %v", err)
			} else if reloaded {
				log.Infof("stylesheet reloaded")
			}
		}
		view.Sync()

		if !term.IsOpen() {
			vp.Update()
		}
		p := vp.Camera.Position
		rend.SetView([3]float32{p.X, p.Y, p.Z}, [3]float32{0.5, 1, 0.5})
		vp.Render(func(rl.Camera3D) { rend.Draw(reg.Objects()) })
		rend.Sweep(reg.Retired())
		dbg.SetCounts(debug.Counts{Live: reg.Len(), Retired: reg.Retired().Len(), Meshes: rend.Cached()})
	}
	draw := func() {
		vp.Draw()
		term.Draw(int32(vp.Bounds.Width), int32(vp.Bounds.Height))
		eng.Draw()
		dbg.Draw(int32(vp.Bounds.Width))
	}
	teardown := func() {
		rend.Sweep(reg.Retired())
		rend.Close()
		vp.Close()
		eng.UnloadFont()
	}

	graphics.Run(graphics.Options{
		Width:     int32(cfg.Window.Width),
		Height:    int32(cfg.Window.Height),
		Title:     cfg.Window.Title,
		TargetFPS: int32(cfg.Window.TargetFPS),
	}, setup, update, draw, teardown)

	if watcher != nil {
		_ = watcher.Close()
	}
	savePrefs(*configPath, cfg, vp, dbg, log)
}

// openStore opens the configured backend, or an in-memory scene file when memory is set.
func openStore(cfg config.Store, memory bool) (store.Store, error) {
	if memory {
		dir, err := vfs.Mem()
		if err != nil {
			return nil, err
		}
		return store.NewFileStore(dir, "scene.bin"), nil
	}
	return store.Open(cfg.Backend, cfg.Path)
}

// loadDefaults reads primitive templates from dir; problems are logged and the builtins used.
func loadDefaults(dir string, log *logger.Logger) primitives.Defaults {
	if dir == "" {
		return primitives.BuiltinDefaults()
	}
	d, err := vfs.OS(dir)
	if err != nil {
		log.Warnf("primitive defaults: %v", err)
		return primitives.BuiltinDefaults()
	}
	defs, err := primitives.LoadDefaults(d)
	if err != nil {
		log.Warnf("primitive defaults: %v", err)
	}
	return defs
}

// savePrefs writes the view toggles back to the config file when the console changed them.
func savePrefs(path string, cfg config.Config, vp *viewport.Viewport, dbg *debug.Debug, log *logger.Logger) {
	prefs := config.Viewport{GridVisible: vp.GridVisible, ShowFPS: dbg.ShowFPS, ShowMemAlloc: dbg.ShowMemAlloc}
	if prefs == cfg.Viewport {
		return
	}
	if err := writePrefs(path, prefs); err != nil {
		log.Errorf("save config: %v", err)
	}
}

// writePrefs rewrites the viewport section of the file at path. Environment overrides are never
// written, and a file that does not parse is left alone.
func writePrefs(path string, prefs config.Viewport) error {
	file, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	file.Viewport = prefs
	return config.Save(path, file)
}
