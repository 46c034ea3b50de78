package clipping

import (
	"testing"

	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/geometry"
	"github.com/philipparndt/goanatomy/pkg/stl"
)

// cubeModel builds an axis-aligned cube as a 12-triangle surface mesh
func cubeModel(name string, min, max float64) *stl.Model {
	model := stl.NewModel(name)

	v := func(x, y, z float64) geometry.Vector3 {
		return geometry.NewVector3(x, y, z)
	}
	quad := func(a, b, c, d geometry.Vector3) {
		t1 := geometry.NewTriangle(geometry.Vector3{}, a, b, c)
		t2 := geometry.NewTriangle(geometry.Vector3{}, a, c, d)
		t1.Normal = t1.CalculateNormal()
		t2.Normal = t2.CalculateNormal()
		model.AddTriangle(t1)
		model.AddTriangle(t2)
	}

	// Bottom, top, front, back, left, right
	quad(v(min, min, min), v(max, min, min), v(max, max, min), v(min, max, min))
	quad(v(min, min, max), v(min, max, max), v(max, max, max), v(max, min, max))
	quad(v(min, min, min), v(min, min, max), v(max, min, max), v(max, min, min))
	quad(v(min, max, min), v(max, max, min), v(max, max, max), v(min, max, max))
	quad(v(min, min, min), v(min, max, min), v(min, max, max), v(min, min, max))
	quad(v(max, min, min), v(max, min, max), v(max, max, max), v(max, max, min))

	return model
}

func cubeStructure(name string, min, max float64) *Structure {
	return &Structure{
		Name:    name,
		Mesh:    cubeModel(name, min, max),
		Color:   render.Color{R: 200, G: 200, B: 200, A: 255},
		Opacity: 1.0,
	}
}

func maxComponent(triangles []geometry.Triangle, axis int) float64 {
	max := triangles[0].V1.Component(axis)
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			if c := v.Component(axis); c > max {
				max = c
			}
		}
	}
	return max
}

func TestClipHalfSpaceKeepsNegativeSide(t *testing.T) {
	cube := cubeModel("cube", 0, 10)
	origin := geometry.NewVector3(5, 5, 5)
	normal := geometry.NewVector3(1, 0, 0)

	clipped := ClipHalfSpace(cube.Triangles, origin, normal)

	if len(clipped) == 0 {
		t.Fatal("Expected surviving geometry after clipping half the cube")
	}
	if max := maxComponent(clipped, 0); max > 5+1e-9 {
		t.Errorf("Expected all clipped vertices at x <= 5, got max x %f", max)
	}
}

func TestClipHalfSpaceAllInside(t *testing.T) {
	cube := cubeModel("cube", 0, 10)
	origin := geometry.NewVector3(20, 0, 0)
	normal := geometry.NewVector3(1, 0, 0)

	clipped := ClipHalfSpace(cube.Triangles, origin, normal)

	if len(clipped) != len(cube.Triangles) {
		t.Errorf("Expected all %d triangles to survive a non-intersecting plane, got %d",
			len(cube.Triangles), len(clipped))
	}
}

func TestClipHalfSpaceAllOutside(t *testing.T) {
	cube := cubeModel("cube", 0, 10)
	origin := geometry.NewVector3(-1, 0, 0)
	normal := geometry.NewVector3(1, 0, 0)

	clipped := ClipHalfSpace(cube.Triangles, origin, normal)

	if len(clipped) != 0 {
		t.Errorf("Expected empty result when everything is on the positive side, got %d triangles",
			len(clipped))
	}
}

func TestClipHalfSpaceOneVertexInside(t *testing.T) {
	tri := geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(10, 10, 0),
	)
	origin := geometry.NewVector3(5, 0, 0)
	normal := geometry.NewVector3(1, 0, 0)

	clipped := ClipHalfSpace([]geometry.Triangle{tri}, origin, normal)

	if len(clipped) != 1 {
		t.Fatalf("Expected 1 triangle when one vertex survives, got %d", len(clipped))
	}
	if max := maxComponent(clipped, 0); max > 5+1e-9 {
		t.Errorf("Expected clipped triangle bounded at x=5, got max x %f", max)
	}
}

func TestClipHalfSpaceTwoVerticesInside(t *testing.T) {
	tri := geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0),
		geometry.NewVector3(10, 5, 0),
	)
	origin := geometry.NewVector3(5, 0, 0)
	normal := geometry.NewVector3(1, 0, 0)

	clipped := ClipHalfSpace([]geometry.Triangle{tri}, origin, normal)

	if len(clipped) != 2 {
		t.Fatalf("Expected 2 triangles when two vertices survive, got %d", len(clipped))
	}
	if max := maxComponent(clipped, 0); max > 5+1e-9 {
		t.Errorf("Expected clipped quad bounded at x=5, got max x %f", max)
	}
}

func TestClipHalfSpaceBoundaryVertexKept(t *testing.T) {
	// A vertex exactly on the plane counts as inside, so cut vertices
	// produced by one pass survive a repeated identical pass
	cube := cubeModel("cube", 0, 10)
	origin := geometry.NewVector3(5, 5, 5)
	normal := geometry.NewVector3(1, 0, 0)

	once := ClipHalfSpace(cube.Triangles, origin, normal)
	twice := ClipHalfSpace(once, origin, normal)

	if len(twice) != len(once) {
		t.Errorf("Expected repeated clip to be a no-op: %d triangles, then %d",
			len(once), len(twice))
	}
}

func TestClipHalfSpaceAtBoundsEndpoints(t *testing.T) {
	cube := cubeModel("cube", 0, 10)
	normal := geometry.NewVector3(1, 0, 0)

	// Plane at the low face: only geometry on that face survives
	low := ClipHalfSpace(cube.Triangles, geometry.NewVector3(0, 5, 5), normal)
	for _, tri := range low {
		for _, v := range tri.Vertices() {
			if v.X > 1e-9 {
				t.Fatalf("Expected only the x=0 face to survive, got vertex at x %f", v.X)
			}
		}
	}

	// Plane at the high face: everything survives
	high := ClipHalfSpace(cube.Triangles, geometry.NewVector3(10, 5, 5), normal)
	if len(high) != len(cube.Triangles) {
		t.Errorf("Expected the whole cube kept at the high face, got %d of %d triangles",
			len(high), len(cube.Triangles))
	}
}

func TestClipHalfSpaceDeterministic(t *testing.T) {
	cube := cubeModel("cube", 0, 10)
	origin := geometry.NewVector3(3, 5, 5)
	normal := geometry.NewVector3(0, 1, 0)

	a := ClipHalfSpace(cube.Triangles, origin, normal)
	b := ClipHalfSpace(cube.Triangles, origin, normal)

	if len(a) != len(b) {
		t.Fatalf("Expected identical results, got %d and %d triangles", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Triangle %d differs between runs", i)
		}
	}
}

func TestClipHalfSpacePreservesInput(t *testing.T) {
	cube := cubeModel("cube", 0, 10)
	before := make([]geometry.Triangle, len(cube.Triangles))
	copy(before, cube.Triangles)

	ClipHalfSpace(cube.Triangles, geometry.NewVector3(5, 5, 5), geometry.NewVector3(0, 0, 1))

	for i := range before {
		if cube.Triangles[i] != before[i] {
			t.Fatalf("Input triangle %d was mutated", i)
		}
	}
}
