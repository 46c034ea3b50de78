package app

import (
	"image"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

type actorKind int

const (
	actorMesh actorKind = iota
	actorQuad
	actorTexturedQuad
)

type sceneActor struct {
	kind    actorKind
	mesh    rl.Mesh
	hasMesh bool
	quad    render.Quad
	color   render.Color
	opacity float64
	texture rl.Texture2D
	visible bool
}

// RaylibScene is the retained-mode Scene backing the 3D workstation.
// Actors are kept in a registry and drawn every frame; Present is a
// no-op because raylib redraws continuously anyway.
type RaylibScene struct {
	actors   map[render.ActorID]*sceneActor
	order    []render.ActorID
	nextID   render.ActorID
	material rl.Material
}

// NewRaylibScene creates an empty scene. Must be called after
// rl.InitWindow since it loads the default material.
func NewRaylibScene() *RaylibScene {
	return &RaylibScene{
		actors:   make(map[render.ActorID]*sceneActor),
		nextID:   1,
		material: rl.LoadMaterialDefault(),
	}
}

func (s *RaylibScene) add(actor *sceneActor) render.ActorID {
	id := s.nextID
	s.nextID++
	s.actors[id] = actor
	s.order = append(s.order, id)
	return id
}

// AddMesh implements render.Scene
func (s *RaylibScene) AddMesh(triangles []geometry.Triangle, color render.Color, opacity float64) render.ActorID {
	actor := &sceneActor{
		kind:    actorMesh,
		color:   color,
		opacity: opacity,
		visible: true,
	}
	if len(triangles) > 0 {
		actor.mesh = trianglesToRaylibMesh(triangles, color, opacity)
		actor.hasMesh = true
	}
	return s.add(actor)
}

// AddQuad implements render.Scene
func (s *RaylibScene) AddQuad(quad render.Quad, color render.Color, opacity float64) render.ActorID {
	return s.add(&sceneActor{
		kind:    actorQuad,
		quad:    quad,
		color:   color,
		opacity: opacity,
		visible: true,
	})
}

// AddTexturedQuad implements render.Scene
func (s *RaylibScene) AddTexturedQuad(quad render.Quad, texture *image.Gray) render.ActorID {
	return s.add(&sceneActor{
		kind:    actorTexturedQuad,
		quad:    quad,
		texture: grayToTexture(texture),
		visible: true,
	})
}

// SetVisible implements render.Scene
func (s *RaylibScene) SetVisible(id render.ActorID, visible bool) {
	if actor, ok := s.actors[id]; ok {
		actor.visible = visible
	}
}

// RemoveIfPresent implements render.Scene. GPU resources are unloaded
// immediately.
func (s *RaylibScene) RemoveIfPresent(id render.ActorID) bool {
	actor, ok := s.actors[id]
	if !ok {
		return false
	}
	s.unload(actor)
	delete(s.actors, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Present implements render.Scene
func (s *RaylibScene) Present() {}

// Draw renders all visible actors. Must run between BeginMode3D and
// EndMode3D. Opaque meshes go first so the translucent quads blend over
// them.
func (s *RaylibScene) Draw() {
	for _, id := range s.order {
		actor := s.actors[id]
		if actor.visible && actor.kind == actorMesh && actor.hasMesh {
			rl.DrawMesh(actor.mesh, s.material, rl.MatrixIdentity())
		}
	}
	for _, id := range s.order {
		actor := s.actors[id]
		if !actor.visible {
			continue
		}
		switch actor.kind {
		case actorQuad:
			drawColoredQuad(actor.quad, actor.color, actor.opacity)
		case actorTexturedQuad:
			drawTexturedQuad(actor.quad, actor.texture)
		}
	}
}

// Close unloads every actor's GPU resources
func (s *RaylibScene) Close() {
	for _, actor := range s.actors {
		s.unload(actor)
	}
	s.actors = make(map[render.ActorID]*sceneActor)
	s.order = nil
}

func (s *RaylibScene) unload(actor *sceneActor) {
	if actor.hasMesh {
		rl.UnloadMesh(&actor.mesh)
		actor.hasMesh = false
	}
	if actor.kind == actorTexturedQuad && actor.texture.ID != 0 {
		rl.UnloadTexture(actor.texture)
		actor.texture.ID = 0
	}
}

// trianglesToRaylibMesh converts a triangle soup into a raylib mesh
// with lighting baked into the vertex colors
func trianglesToRaylibMesh(triangles []geometry.Triangle, color render.Color, opacity float64) rl.Mesh {
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()
	alpha := uint8(math.Max(0, math.Min(255, opacity*255)))

	idx := 0
	for _, triangle := range triangles {
		normal := triangle.CalculateNormal()

		// Diffuse with a 30% ambient floor
		intensity := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(float64(color.R) * intensity)
		g := uint8(float64(color.G) * intensity)
		b := uint8(float64(color.B) * intensity)

		for _, v := range triangle.Vertices() {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = alpha
			idx++
		}
	}

	mesh.Vertices = &vertices[0]
	mesh.Normals = &normals[0]
	mesh.Colors = &colors[0]

	rl.UploadMesh(&mesh, false)
	return mesh
}

// grayToTexture uploads an 8-bit grayscale slice as a GPU texture
func grayToTexture(gray *image.Gray) rl.Texture2D {
	bounds := gray.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := gray.GrayAt(x, y).Y
			i := rgba.PixOffset(x, y)
			rgba.Pix[i+0] = v
			rgba.Pix[i+1] = v
			rgba.Pix[i+2] = v
			rgba.Pix[i+3] = 255
		}
	}
	img := rl.NewImageFromImage(rgba)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return texture
}

// quadCorners expands a quad into its four corner points, ordered
// counter-clockwise around the normal
func quadCorners(quad render.Quad) [4]geometry.Vector3 {
	axisU, axisV := dominantAxes(quad.Normal)
	u := axisU.Mul(quad.Width / 2)
	v := axisV.Mul(quad.Height / 2)
	c := quad.Center
	return [4]geometry.Vector3{
		c.Sub(u).Sub(v),
		c.Add(u).Sub(v),
		c.Add(u).Add(v),
		c.Sub(u).Add(v),
	}
}

// dominantAxes picks the two canonical axes spanning the plane of an
// axis-aligned normal
func dominantAxes(normal geometry.Vector3) (geometry.Vector3, geometry.Vector3) {
	abs := func(f float64) float64 { return math.Abs(f) }
	switch {
	case abs(normal.X) >= abs(normal.Y) && abs(normal.X) >= abs(normal.Z):
		return geometry.NewVector3(0, 1, 0), geometry.NewVector3(0, 0, 1)
	case abs(normal.Y) >= abs(normal.Z):
		return geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, 0, 1)
	default:
		return geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, 1, 0)
	}
}

func toRl(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// drawColoredQuad draws a translucent double-sided quad
func drawColoredQuad(quad render.Quad, color render.Color, opacity float64) {
	corners := quadCorners(quad)
	alpha := uint8(math.Max(0, math.Min(255, opacity*255)))
	c := rl.NewColor(color.R, color.G, color.B, alpha)

	a, b, d, e := toRl(corners[0]), toRl(corners[1]), toRl(corners[2]), toRl(corners[3])
	rl.DrawTriangle3D(a, b, d, c)
	rl.DrawTriangle3D(a, d, e, c)
	// Reverse winding for the back face
	rl.DrawTriangle3D(d, b, a, c)
	rl.DrawTriangle3D(e, d, a, c)
}

// drawTexturedQuad draws a slice texture on a double-sided quad via rlgl
func drawTexturedQuad(quad render.Quad, texture rl.Texture2D) {
	corners := quadCorners(quad)

	rl.SetTexture(texture.ID)
	rl.Begin(rl.RLQuads)
	rl.Color4ub(255, 255, 255, 255)

	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i := 0; i < 4; i++ {
		rl.TexCoord2f(uv[i][0], uv[i][1])
		rl.Vertex3f(float32(corners[i].X), float32(corners[i].Y), float32(corners[i].Z))
	}
	// Back face
	for i := 3; i >= 0; i-- {
		rl.TexCoord2f(uv[i][0], uv[i][1])
		rl.Vertex3f(float32(corners[i].X), float32(corners[i].Y), float32(corners[i].Z))
	}

	rl.End()
	rl.SetTexture(0)
}
