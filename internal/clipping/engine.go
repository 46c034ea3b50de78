package clipping

import (
	"fmt"

	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// MeshClipEngine applies the active plane set to the structure set and
// keeps the scene in sync: with no planes the full originals are shown;
// with planes the originals are hidden and replaced by per-structure
// clipped geometry. Every recompute discards and rebuilds all derived
// actors, so no stale geometry survives a plane change.
type MeshClipEngine struct {
	scene          render.Scene
	structures     []*Structure
	originalActors []render.ActorID
	clippedActors  []render.ActorID
}

// NewMeshClipEngine registers the structures' original actors with the
// scene and returns the engine that manages them
func NewMeshClipEngine(scene render.Scene, structures []*Structure) *MeshClipEngine {
	e := &MeshClipEngine{scene: scene}
	e.SetStructures(structures)
	return e
}

// SetStructures replaces the structure set: all managed actors are
// dropped and fresh original actors are registered. The caller is
// responsible for invalidating the BoundsCache for the same epoch.
func (e *MeshClipEngine) SetStructures(structures []*Structure) {
	e.removeClippedActors()
	for _, id := range e.originalActors {
		if id == 0 {
			continue
		}
		if !e.scene.RemoveIfPresent(id) {
			fmt.Printf("Warning: original actor %d already removed\n", id)
		}
	}

	e.structures = structures
	e.originalActors = make([]render.ActorID, len(structures))
	for i, structure := range structures {
		if structure == nil || structure.Mesh == nil {
			continue
		}
		e.originalActors[i] = e.scene.AddMesh(
			structure.Mesh.Triangles, structure.Color, structure.Opacity)
	}
}

// Structures returns the current structure set
func (e *MeshClipEngine) Structures() []*Structure {
	return e.structures
}

// Recompute rebuilds the clipped scene for the given plane set. With an
// empty plane set the originals are restored at full visibility; this
// is a first-class state, not an error path. One Present is issued per
// call.
func (e *MeshClipEngine) Recompute(planes []ClipPlane) {
	e.removeClippedActors()

	if len(planes) == 0 {
		e.setOriginalsVisible(true)
		e.scene.Present()
		return
	}

	e.setOriginalsVisible(false)

	for i, structure := range e.structures {
		clipped, err := clipStructure(structure, planes)
		if err != nil {
			fmt.Printf("Warning: clipping failed for structure %d: %v\n", i, err)
			continue
		}
		if len(clipped) == 0 {
			// Fully clipped away; nothing to render for this structure
			continue
		}
		id := e.scene.AddMesh(clipped, structure.Color, structure.Opacity)
		e.clippedActors = append(e.clippedActors, id)
	}

	e.scene.Present()
}

// clipStructure applies every plane in order to one structure's
// original mesh, short-circuiting as soon as nothing is left
func clipStructure(structure *Structure, planes []ClipPlane) ([]geometry.Triangle, error) {
	if structure == nil || structure.Mesh == nil {
		return nil, fmt.Errorf("structure has no mesh")
	}
	if !structure.HasPoints() {
		return nil, nil
	}

	clipped := structure.Mesh.Triangles
	for _, plane := range planes {
		clipped = ClipHalfSpace(clipped, plane.Origin, plane.Normal)
		if len(clipped) == 0 {
			break
		}
	}
	return clipped, nil
}

// removeClippedActors drops every derived actor. A removal that fails
// because the actor is already gone is logged and ignored.
func (e *MeshClipEngine) removeClippedActors() {
	for _, id := range e.clippedActors {
		if !e.scene.RemoveIfPresent(id) {
			fmt.Printf("Warning: clipped actor %d already removed\n", id)
		}
	}
	e.clippedActors = e.clippedActors[:0]
}

func (e *MeshClipEngine) setOriginalsVisible(visible bool) {
	for _, id := range e.originalActors {
		if id == 0 {
			continue
		}
		e.scene.SetVisible(id, visible)
	}
}
