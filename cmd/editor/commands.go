package main

import (
	"fmt"

	"scene-editor/internal/commands"
	"scene-editor/internal/debug"
	"scene-editor/internal/viewport"
)

// registerViewCommands adds the console commands that change the view rather than the scene.
func registerViewCommands(reg *commands.Registry, vp *viewport.Viewport, dbg *debug.Debug) {
	gridFS := commands.NewFlagSet("grid")
	gridShow := gridFS.Bool("show", false, "show the grid")
	gridHide := gridFS.Bool("hide", false, "hide the grid")
	reg.Register("grid", "grid --show|--hide", gridFS, func() error {
		v, err := toggle(vp.GridVisible, *gridShow, *gridHide)
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
		vp.SetGridVisible(v)
		return nil
	})

	fpsFS := commands.NewFlagSet("fps")
	fpsShow := fpsFS.Bool("show", false, "show FPS")
	fpsHide := fpsFS.Bool("hide", false, "hide FPS")
	fpsMem := fpsFS.Bool("mem", false, "apply to the memory and object counters instead")
	reg.Register("fps", "fps --show|--hide [--mem]", fpsFS, func() error {
		cur := dbg.ShowFPS
		if *fpsMem {
			cur = dbg.ShowMemAlloc
		}
		v, err := toggle(cur, *fpsShow, *fpsHide)
		if err != nil {
			return fmt.Errorf("fps: %w", err)
		}
		if *fpsMem {
			dbg.SetShowMemAlloc(v)
		} else {
			dbg.SetShowFPS(v)
		}
		return nil
	})

	reg.Register("camera", "camera (reset the view)", commands.NewFlagSet("camera"), func() error {
		vp.ResetCamera()
		return nil
	})
}

// toggle resolves --show/--hide; neither flips cur.
func toggle(cur, show, hide bool) (bool, error) {
	switch {
	case show && hide:
		return cur, fmt.Errorf("--show and --hide are exclusive")
	case show:
		return true, nil
	case hide:
		return false, nil
	}
	return !cur, nil
}
