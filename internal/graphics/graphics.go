// Package graphics owns the window and the frame loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Width     int32
	Height    int32
	Title     string
	TargetFPS int32
}

// Run opens a resizable window and runs the main loop until the window is closed. setup runs
// once after the OpenGL context exists (load fonts, GPU assets). Each frame it calls update
// (input, offscreen rendering), then clears the screen and calls draw. teardown runs before the
// window closes so GPU resources can still be freed.
func Run(opts Options, setup, update, draw, teardown func()) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via window button
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}
	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
