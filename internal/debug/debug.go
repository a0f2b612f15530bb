// Package debug draws the FPS, heap and scene counter overlays.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Counts are the scene counters shown under the memory line.
type Counts struct {
	Live    int // objects in the scene
	Retired int // objects waiting for their meshes to be released
	Meshes  int // objects with a GPU mesh
}

// String formats the counters for the overlay.
func (c Counts) String() string {
	return fmt.Sprintf("Objects: %d  Retired: %d  Meshes: %d", c.Live, c.Retired, c.Meshes)
}

// Debug holds runtime debugging overlays (FPS, heap, scene counters). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	counts       Counts
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory and scene counters are drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used to draw FPS/Mem (e.g. same as UI). Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetCounts records this frame's scene counters.
func (d *Debug) SetCounts(c Counts) {
	d.counts = c
}

// Lines returns the overlay lines for the current state without drawing them.
func (d *Debug) Lines() []string {
	var out []string
	if d.ShowFPS && d.lastFpsText != "" {
		out = append(out, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if d.lastMemText != "" {
			out = append(out, d.lastMemText)
		}
		out = append(out, d.counts.String())
	}
	return out
}

// Draw renders any enabled debug overlays at the top-right of an area width pixels wide.
// Call after scene and console in the draw loop.
// FPS is drawn at the top-right in green when ShowFPS is true.
// Memory (heap alloc) is drawn under FPS when ShowMemAlloc is true.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(width int32) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if update {
		if d.ShowFPS {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
	}

	y := int32(fpsPadding)
	for _, text := range d.Lines() {
		d.drawRight(text, width, y)
		y += fpsLineHeight
	}
}

func (d *Debug) drawRight(text string, width, y int32) {
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(width)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, width-w-fpsPadding, y, fpsFontSize, rl.Green)
}
