package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of pointer and keyboard state. PollInput fills it from raylib; tests build it
// by hand.
type Input struct {
	Mouse     rl.Vector2
	Clicked   bool // left button went down this frame
	Wheel     float32
	Chars     []rune
	Backspace bool
	Tab       bool
	Enter     bool
	Escape    bool
}

// PollInput reads this frame's input from raylib. Call once per frame before Engine.Update.
func PollInput() Input {
	in := Input{
		Mouse:     rl.GetMousePosition(),
		Clicked:   rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Wheel:     rl.GetMouseWheelMove(),
		Backspace: rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace),
		Tab:       rl.IsKeyPressed(rl.KeyTab),
		Enter:     rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
		Escape:    rl.IsKeyPressed(rl.KeyEscape),
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		in.Chars = append(in.Chars, c)
	}
	return in
}
