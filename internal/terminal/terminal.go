// Package terminal is the editor console: an input bar over the viewport that runs "cmd ..."
// lines through the command registry and shows recent log lines above it.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	// Reused every frame when drawing the bar to avoid per-frame color allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console input bar at the bottom of the viewport. It is shown/hidden with ESC.
// Lines starting with "cmd " are parsed as subcommand + flags and executed via the command registry;
// anything else gets a hint.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// SetFont sets the font used to draw the bar. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Input returns the text typed so far.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Type appends typed characters to the input.
func (t *Terminal) Type(chars []rune) {
	for _, c := range chars {
		t.inputBuf += string(c)
	}
}

// Backspace removes the last rune of the input.
func (t *Terminal) Backspace() {
	if len(t.inputBuf) == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.inputBuf)
	t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
}

// Submit logs the current input and runs it. Empty input is ignored.
func (t *Terminal) Submit() {
	if t.inputBuf == "" {
		return
	}
	line := t.inputBuf
	t.inputBuf = ""
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log("commands start with \"cmd\" (try: cmd help)")
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Errorf("%v", err)
	}
}

// Update handles typing, paste, backspace and enter while open. ESC is handled by the caller
// since it also unfocuses form fields. Call once per frame.
func (t *Terminal) Update(chars []rune) {
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		t.Type(chars)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		t.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		t.Submit()
	}
}

// Draw draws the bar at the bottom of a width x height area when open, and the recent log lines
// above it.
func (t *Terminal) Draw(width, height int32) {
	if !t.open {
		return
	}
	barY := int(height) - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), width, int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		t.drawText(clip(lines[i]), padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), width, BarHeight, termBarColor)
	rl.DrawRectangle(0, int32(barY), width, 1, termLineColor)
	t.drawText(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) drawText(text string, x, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fontSize, c)
}

func clip(line string) string {
	if len(line) > maxLineLen {
		return line[:maxLineLen-3] + "..."
	}
	return line
}
