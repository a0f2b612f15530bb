// Package render draws scene objects with raylib. GPU meshes are created lazily on first draw, so
// nothing here touches the GPU before the window exists.
package render

import (
	"image/color"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
)

const (
	sphereRings  = 24
	sphereSlices = 24
)

// gpuMesh is an uploaded mesh and the figure dimensions it was generated for.
type gpuMesh struct {
	mesh rl.Mesh
	dims []float32
}

// Renderer owns one mesh per drawn object, keyed by entity id, and a shared lit material whose
// ambient uniform is set per object.
type Renderer struct {
	meshes   map[uuid.UUID]gpuMesh
	mtl      rl.Material
	locs     litLocs
	mtlReady bool
	lit      bool
	viewPos  [3]float32
	lightDir [3]float32

	gen    func(primitives.Figure) rl.Mesh
	unload func(*rl.Mesh)
}

// New returns a renderer with no GPU resources.
func New() *Renderer {
	return &Renderer{
		meshes:   make(map[uuid.UUID]gpuMesh),
		lightDir: [3]float32{0.5, 1, 0.5},
		gen:      genMesh,
		unload:   rl.UnloadMesh,
	}
}

// genMesh builds the mesh for a figure centered at the origin.
func genMesh(f primitives.Figure) rl.Mesh {
	switch f := f.(type) {
	case primitives.Sphere:
		return rl.GenMeshSphere(f.Radius, sphereRings, sphereSlices)
	case primitives.Box:
		return rl.GenMeshCube(f.X, f.Y, f.Z)
	}
	return rl.Mesh{}
}

// SetView sets the camera position and direction to the light for this frame.
func (r *Renderer) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// Cached returns how many objects currently have a GPU mesh.
func (r *Renderer) Cached() int { return len(r.meshes) }

// meshFor returns the object's mesh, generating it on first use and regenerating it when the
// figure's dimensions changed since the last draw.
func (r *Renderer) meshFor(o *scene.Object) rl.Mesh {
	dims := o.Figure.Dims()
	if m, ok := r.meshes[o.Entity.ID]; ok {
		if slices.Equal(m.dims, dims) {
			return m.mesh
		}
		r.unload(&m.mesh)
	}
	m := gpuMesh{mesh: r.gen(o.Figure), dims: dims}
	r.meshes[o.Entity.ID] = m
	return m.mesh
}

func (r *Renderer) ensureMaterial() {
	if r.mtlReady {
		return
	}
	r.mtl, r.locs, r.lit = loadLitMaterial()
	r.mtlReady = true
}

// Draw draws every enabled object. Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(objs []*scene.Object) {
	r.ensureMaterial()
	if r.lit {
		viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
		lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
		if r.locs.viewPos >= 0 {
			rl.SetShaderValueV(r.mtl.Shader, r.locs.viewPos, viewPos[:], rl.ShaderUniformVec3, 1)
		}
		if r.locs.lightDir >= 0 {
			rl.SetShaderValueV(r.mtl.Shader, r.locs.lightDir, lightDir[:], rl.ShaderUniformVec3, 1)
		}
	}
	for _, o := range objs {
		if !o.Entity.Enabled {
			continue
		}
		mesh := r.meshFor(o)
		if r.lit && r.locs.ambient >= 0 {
			amb := normalize(o.Material.Ambient)
			rl.SetShaderValueV(r.mtl.Shader, r.locs.ambient, amb[:], rl.ShaderUniformVec4, 1)
		} else if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = o.Material.Ambient
		}
		rl.DrawMesh(mesh, r.mtl, Matrix(o.Transform))
	}
}

// Release frees the mesh of a retired object. Objects that were never drawn are ignored.
func (r *Renderer) Release(o *scene.Object) {
	m, ok := r.meshes[o.Entity.ID]
	if !ok {
		return
	}
	r.unload(&m.mesh)
	delete(r.meshes, o.Entity.ID)
}

// Sweep releases every object waiting in the arena. Call once per frame after drawing.
func (r *Renderer) Sweep(retired *scene.Arena) int {
	return retired.Release(r.Release)
}

// Close frees all meshes and the shared material.
func (r *Renderer) Close() {
	for id, m := range r.meshes {
		r.unload(&m.mesh)
		delete(r.meshes, id)
	}
	if r.mtlReady {
		rl.UnloadMaterial(r.mtl)
		r.mtlReady = false
	}
}

// Matrix converts a mathgl matrix to raylib's layout. Both are column-major, so element i maps to
// field Mi.
func Matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

func normalize(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
