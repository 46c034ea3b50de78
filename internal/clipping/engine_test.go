package clipping

import (
	"testing"

	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

func planeAt(axis geometry.Axis, origin geometry.Vector3) ClipPlane {
	return ClipPlane{
		Axis:   axis,
		Origin: origin,
		Normal: axis.Normal(),
	}
}

func TestEngineRegistersOriginals(t *testing.T) {
	scene := render.NewMemoryScene()
	NewMeshClipEngine(scene, []*Structure{
		cubeStructure("a", 0, 10),
		cubeStructure("b", 20, 30),
	})

	if n := scene.CountKind(render.KindMesh); n != 2 {
		t.Errorf("Expected 2 original mesh actors, got %d", n)
	}
}

func TestEngineEmptyPlaneSetShowsOriginals(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})

	engine.Recompute([]ClipPlane{planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))})
	engine.Recompute(nil)

	if n := scene.CountKind(render.KindMesh); n != 1 {
		t.Errorf("Expected only the original actor after clearing planes, got %d", n)
	}
	if n := scene.VisibleOfKind(render.KindMesh); n != 1 {
		t.Errorf("Expected the original actor visible, got %d visible", n)
	}
}

func TestEngineRecomputeReplacesClippedActors(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})
	plane := planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))

	engine.Recompute([]ClipPlane{plane})
	engine.Recompute([]ClipPlane{plane})
	engine.Recompute([]ClipPlane{plane})

	// 1 hidden original + 1 clipped, regardless of how many recomputes
	if n := scene.CountKind(render.KindMesh); n != 2 {
		t.Errorf("Expected 2 mesh actors after repeated recomputes, got %d", n)
	}
	if n := scene.VisibleOfKind(render.KindMesh); n != 1 {
		t.Errorf("Expected only the clipped actor visible, got %d visible", n)
	}
}

func TestEngineRecomputeIdempotent(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})
	plane := planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))

	engine.Recompute([]ClipPlane{plane})
	first := visibleMeshTriangles(scene)
	engine.Recompute([]ClipPlane{plane})
	second := visibleMeshTriangles(scene)

	if len(first) != len(second) {
		t.Fatalf("Expected identical geometry across recomputes, got %d and %d triangles",
			len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Triangle %d differs between recomputes", i)
		}
	}
}

func visibleMeshTriangles(scene *render.MemoryScene) []geometry.Triangle {
	for id := render.ActorID(1); id < 100; id++ {
		actor := scene.Actor(id)
		if actor != nil && actor.Kind == render.KindMesh && actor.Visible {
			return actor.Triangles
		}
	}
	return nil
}

func TestEngineClippedGeometryBounded(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})

	engine.Recompute([]ClipPlane{planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))})

	var clipped *render.Actor
	for id := render.ActorID(1); ; id++ {
		actor := scene.Actor(id)
		if actor == nil {
			break
		}
		if actor.Kind == render.KindMesh && actor.Visible {
			clipped = actor
		}
	}
	if clipped == nil {
		t.Fatal("Expected a visible clipped mesh actor")
	}
	if max := maxComponent(clipped.Triangles, 0); max > 5+1e-9 {
		t.Errorf("Expected clipped actor bounded at x=5, got max x %f", max)
	}
}

func TestEngineFullyClippedStructureSkipped(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})

	// Plane at x=-1 clips everything away
	engine.Recompute([]ClipPlane{planeAt(geometry.AxisX, geometry.NewVector3(-1, 0, 0))})

	if n := scene.CountKind(render.KindMesh); n != 1 {
		t.Errorf("Expected no clipped actor for a fully clipped structure, got %d actors", n)
	}
	if n := scene.VisibleOfKind(render.KindMesh); n != 0 {
		t.Errorf("Expected nothing visible, got %d visible", n)
	}
}

func TestEngineSurvivesVanishedActor(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})
	plane := planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))

	engine.Recompute([]ClipPlane{plane})

	// Drop the clipped actor behind the engine's back; the next
	// recompute logs the failed removal and carries on
	for id := render.ActorID(1); ; id++ {
		actor := scene.Actor(id)
		if actor == nil {
			break
		}
		if actor.Visible {
			scene.Forget(id)
			break
		}
	}

	engine.Recompute([]ClipPlane{plane})

	if n := scene.VisibleOfKind(render.KindMesh); n != 1 {
		t.Errorf("Expected one visible clipped actor after recovery, got %d", n)
	}
}

func TestEngineNilMeshSkipped(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{
		{Name: "ghost"},
		cubeStructure("cube", 0, 10),
	})

	if n := scene.CountKind(render.KindMesh); n != 1 {
		t.Errorf("Expected 1 original actor for the structure with a mesh, got %d", n)
	}

	engine.Recompute([]ClipPlane{planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))})

	if n := scene.VisibleOfKind(render.KindMesh); n != 1 {
		t.Errorf("Expected 1 clipped actor, got %d visible", n)
	}
}

// removalRecorder counts RemoveIfPresent calls per handle
type removalRecorder struct {
	*render.MemoryScene
	removals map[render.ActorID]int
}

func (r *removalRecorder) RemoveIfPresent(id render.ActorID) bool {
	r.removals[id]++
	return r.MemoryScene.RemoveIfPresent(id)
}

func TestEngineSetStructuresSkipsPlaceholderActors(t *testing.T) {
	scene := &removalRecorder{
		MemoryScene: render.NewMemoryScene(),
		removals:    make(map[render.ActorID]int),
	}
	engine := NewMeshClipEngine(scene, []*Structure{
		{Name: "ghost"},
		cubeStructure("cube", 0, 10),
	})

	// The nil-mesh structure holds the zero handle; replacing the set
	// must not try to remove it
	engine.SetStructures([]*Structure{cubeStructure("other", 0, 5)})

	if n := scene.removals[0]; n != 0 {
		t.Errorf("Expected no removal of the zero handle, got %d", n)
	}
	if n := scene.CountKind(render.KindMesh); n != 1 {
		t.Errorf("Expected the replacement structure's single actor, got %d", n)
	}
}

func TestEngineSetStructuresReplacesScene(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{
		cubeStructure("a", 0, 10),
		cubeStructure("b", 20, 30),
	})

	engine.SetStructures([]*Structure{cubeStructure("c", 0, 5)})

	if n := scene.CountKind(render.KindMesh); n != 1 {
		t.Errorf("Expected the replacement structure's single actor, got %d", n)
	}
}

func TestEnginePresentsOncePerRecompute(t *testing.T) {
	scene := render.NewMemoryScene()
	engine := NewMeshClipEngine(scene, []*Structure{cubeStructure("cube", 0, 10)})

	before := scene.Presents
	engine.Recompute([]ClipPlane{planeAt(geometry.AxisX, geometry.NewVector3(5, 5, 5))})
	engine.Recompute(nil)

	if got := scene.Presents - before; got != 2 {
		t.Errorf("Expected 2 presents for 2 recomputes, got %d", got)
	}
}
