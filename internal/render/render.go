package render

import (
	"image"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"planet-tour/internal/scene"
)

// Renderer draws a scene.Scene with raylib from a fixed camera. GPU resources are created
// on the first Draw, after the window and GL context exist.
type Renderer struct {
	Camera rl.Camera3D

	ready      bool
	sphereMesh rl.Mesh
	starMesh   rl.Mesh
	ringMesh   rl.Mesh
	ringGeom   scene.Geometry // backs ringMesh's CPU arrays; kept alive for the mesh lifetime
	pinner     runtime.Pinner // pins ringGeom so the mesh may be handed to C
	planetMtl  rl.Material
	flatMtl    rl.Material
	blank      rl.Texture2D
	textures   map[string]rl.Texture2D

	ambient  [4]float32
	lightDir [3]float32
}

// New returns a renderer with the tour camera: 30° vertical field of view at (0, 0.1, 2)
// looking down -Z. The camera never moves; the scene container does.
func New() *Renderer {
	r := &Renderer{
		textures: make(map[string]rl.Texture2D),
		ambient:  defaultAmbient,
		lightDir: defaultLightDir,
	}
	r.Camera.Position = rl.NewVector3(0, 0.1, 2)
	r.Camera.Target = rl.NewVector3(0, 0.1, 1)
	r.Camera.Up = rl.NewVector3(0, 1, 0)
	r.Camera.Fovy = 30
	r.Camera.Projection = rl.CameraPerspective
	return r
}

// Upload turns a decoded image into a texture stored under key. repeat selects repeat
// wrapping (used for the ring). Must run on the main thread.
func (r *Renderer) Upload(key string, img image.Image, repeat bool) {
	rimg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	if !rl.IsTextureValid(tex) {
		return
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	if repeat {
		rl.SetTextureWrap(tex, rl.WrapRepeat)
	} else {
		rl.SetTextureWrap(tex, rl.WrapClamp)
	}
	if old, ok := r.textures[key]; ok {
		rl.UnloadTexture(old)
	}
	r.textures[key] = tex
}

func (r *Renderer) ensureLoaded(s *scene.Scene) {
	if r.ready {
		return
	}
	r.ready = true
	segs := int32(s.Layout.Segments)
	r.sphereMesh = rl.GenMeshSphere(s.Layout.Radius, segs, segs)
	r.starMesh = rl.GenMeshSphere(s.Starfield.Radius, int32(s.Starfield.Segments), int32(s.Starfield.Segments))
	if s.Ring != nil {
		r.ringGeom = scene.RingGeometry(s.Ring.Inner, s.Ring.Radius, s.Ring.Segments)
		r.ringMesh = uploadGeometry(&r.ringGeom, &r.pinner)
	}

	blankImg := rl.GenImageColor(1, 1, rl.Gray)
	r.blank = rl.LoadTextureFromImage(blankImg)
	rl.UnloadImage(blankImg)

	r.planetMtl = rl.LoadMaterialDefault()
	if sh := loadPlanetShader(); rl.IsShaderValid(sh) {
		r.planetMtl.Shader = sh
	}
	r.flatMtl = rl.LoadMaterialDefault()
}

// uploadGeometry sends generated geometry to the GPU. The mesh points at g's slices,
// which stay pinned until the renderer closes; the mesh must not be freed with
// rl.UnloadMesh.
func uploadGeometry(g *scene.Geometry, p *runtime.Pinner) rl.Mesh {
	p.Pin(&g.Vertices[0])
	p.Pin(&g.Normals[0])
	p.Pin(&g.Texcoords[0])
	p.Pin(&g.Indices[0])
	mesh := rl.Mesh{
		VertexCount:   int32(g.VertexCount()),
		TriangleCount: int32(g.TriangleCount()),
		Vertices:      &g.Vertices[0],
		Normals:       &g.Normals[0],
		Texcoords:     &g.Texcoords[0],
		Indices:       &g.Indices[0],
	}
	rl.UploadMesh(&mesh, false)
	return mesh
}

func (r *Renderer) texture(key string) rl.Texture2D {
	if tex, ok := r.textures[key]; ok {
		return tex
	}
	return r.blank
}

// setFlat points the unlit material at tex, tinted white at the given opacity.
func (r *Renderer) setFlat(tex rl.Texture2D, opacity float32) {
	rl.SetMaterialTexture(&r.flatMtl, rl.MapAlbedo, tex)
	if albedo := r.flatMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.Fade(rl.White, opacity)
	}
}

func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

// Draw renders the starfield, the planets and the ring. Call between BeginDrawing and
// EndDrawing, before the 2D overlay.
func (r *Renderer) Draw(s *scene.Scene) {
	r.ensureLoaded(s)
	rl.BeginMode3D(r.Camera)

	// Background: inside faces of the star sphere, half transparent, no depth writes.
	rl.DisableBackfaceCulling()
	rl.DisableDepthMask()
	r.setFlat(r.texture(s.Starfield.Texture), s.Starfield.Opacity)
	rl.DrawMesh(r.starMesh, r.flatMtl, toMatrix(s.World(s.Starfield)))
	rl.EnableDepthMask()
	rl.EnableBackfaceCulling()

	r.setPlanetUniforms(r.planetMtl.Shader)
	for _, sp := range s.Spheres {
		rl.SetMaterialTexture(&r.planetMtl, rl.MapAlbedo, r.texture(sp.Texture))
		rl.DrawMesh(r.sphereMesh, r.planetMtl, toMatrix(s.World(sp)))
	}

	if s.Ring != nil {
		rl.DisableBackfaceCulling()
		r.setFlat(r.texture(s.Ring.Texture), s.Ring.Opacity)
		rl.DrawMesh(r.ringMesh, r.flatMtl, toMatrix(s.World(s.Ring)))
		rl.EnableBackfaceCulling()
	}

	rl.EndMode3D()
}

// Close releases GPU resources created by raylib. The ring mesh's GPU buffers are left to
// process exit because its vertex arrays are Go memory.
func (r *Renderer) Close() {
	if !r.ready {
		return
	}
	for _, tex := range r.textures {
		rl.UnloadTexture(tex)
	}
	rl.UnloadTexture(r.blank)
	rl.UnloadMesh(&r.sphereMesh)
	rl.UnloadMesh(&r.starMesh)
	rl.UnloadShader(r.planetMtl.Shader)
	r.pinner.Unpin()
}
