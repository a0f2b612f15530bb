// Package viewport draws the 3D view of the scene into a render texture placed left of the
// editor panel.
package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// background is the clear color behind the scene.
var background = rl.NewColor(30, 32, 36, 255)

// Viewport holds the 3D camera and the render target for the view area.
// The camera looks at the origin from (0,0,40) with a 45 degree field of view. While the right
// mouse button is held over the view, it flies first-person style (WASD + mouse look).
type Viewport struct {
	Camera      rl.Camera3D
	GridVisible bool
	Bounds      rl.Rectangle

	target  rl.RenderTexture2D
	targetW int32
	targetH int32
	flying  bool
}

// New returns a viewport with the default camera. The grid is visible by default.
func New() *Viewport {
	v := &Viewport{GridVisible: true}
	v.ResetCamera()
	return v
}

// ResetCamera puts the camera back at its start position.
func (v *Viewport) ResetCamera() {
	v.Camera.Position = rl.NewVector3(0, 0, 40)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
}

// SetGridVisible sets whether the editor grid is drawn.
func (v *Viewport) SetGridVisible(visible bool) {
	v.GridVisible = visible
}

// Layout returns the view area for a screen of the given size: everything left of a panel
// panelWidth pixels wide. The width never drops below one pixel.
func Layout(screenW, screenH, panelWidth int32) rl.Rectangle {
	w := screenW - panelWidth
	if w < 1 {
		w = 1
	}
	if screenH < 1 {
		screenH = 1
	}
	return rl.NewRectangle(0, 0, float32(w), float32(screenH))
}

// Flying reports whether the camera is being driven by the mouse.
func (v *Viewport) Flying() bool { return v.flying }

// Update runs camera control for this frame. Flight starts when the right mouse button goes down
// over the view and ends when it is released; the cursor is captured meanwhile.
func (v *Viewport) Update() {
	switch {
	case !v.flying && rl.IsMouseButtonPressed(rl.MouseRightButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), v.Bounds):
		v.flying = true
		rl.DisableCursor()
	case v.flying && !rl.IsMouseButtonDown(rl.MouseRightButton):
		v.flying = false
		rl.EnableCursor()
	}
	if v.flying {
		rl.UpdateCamera(&v.Camera, rl.CameraFirstPerson)
	}
}

// ensureTarget (re)creates the render texture when the view size changed.
func (v *Viewport) ensureTarget() {
	w, h := int32(v.Bounds.Width), int32(v.Bounds.Height)
	if rl.IsRenderTextureValid(v.target) && w == v.targetW && h == v.targetH {
		return
	}
	if rl.IsRenderTextureValid(v.target) {
		rl.UnloadRenderTexture(v.target)
	}
	v.target = rl.LoadRenderTexture(w, h)
	v.targetW, v.targetH = w, h
}

// Render draws the grid and then drawScene into the render texture. Call before BeginDrawing.
// drawScene runs inside BeginMode3D.
func (v *Viewport) Render(drawScene func(cam rl.Camera3D)) {
	v.ensureTarget()
	rl.BeginTextureMode(v.target)
	rl.ClearBackground(background)
	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawEditorGrid()
	}
	if drawScene != nil {
		drawScene(v.Camera)
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}

// Draw blits the last rendered frame at Bounds. Render textures are stored upside down, hence
// the negative source height.
func (v *Viewport) Draw() {
	if !rl.IsRenderTextureValid(v.target) {
		return
	}
	src := rl.NewRectangle(0, 0, float32(v.targetW), -float32(v.targetH))
	rl.DrawTextureRec(v.target.Texture, src, rl.NewVector2(v.Bounds.X, v.Bounds.Y), rl.White)
}

// Close frees the render texture and releases the cursor.
func (v *Viewport) Close() {
	if v.flying {
		rl.EnableCursor()
		v.flying = false
	}
	if rl.IsRenderTextureValid(v.target) {
		rl.UnloadRenderTexture(v.target)
		v.target = rl.RenderTexture2D{}
	}
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start, end = rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0)
	rl.DrawLine3D(start, end, axisX)
	start, end = rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0)
	rl.DrawLine3D(start, end, axisY)
	start, end = rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
