package render

import (
	"image"

	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// ActorKind distinguishes the actor types a MemoryScene records
type ActorKind int

const (
	KindMesh ActorKind = iota
	KindQuad
	KindTexturedQuad
)

// Actor is the recorded state of one MemoryScene render object
type Actor struct {
	Kind      ActorKind
	Triangles []geometry.Triangle
	Quad      Quad
	Texture   *image.Gray
	Color     Color
	Opacity   float64
	Visible   bool
}

// MemoryScene is a Scene that records every operation instead of
// drawing. Tests inspect it to verify actor bookkeeping.
type MemoryScene struct {
	actors   map[ActorID]*Actor
	nextID   ActorID
	Presents int
}

// NewMemoryScene creates an empty recording scene
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{
		actors: make(map[ActorID]*Actor),
		nextID: 1,
	}
}

func (s *MemoryScene) add(actor *Actor) ActorID {
	id := s.nextID
	s.nextID++
	s.actors[id] = actor
	return id
}

// AddMesh implements Scene
func (s *MemoryScene) AddMesh(triangles []geometry.Triangle, color Color, opacity float64) ActorID {
	return s.add(&Actor{
		Kind:      KindMesh,
		Triangles: triangles,
		Color:     color,
		Opacity:   opacity,
		Visible:   true,
	})
}

// AddQuad implements Scene
func (s *MemoryScene) AddQuad(quad Quad, color Color, opacity float64) ActorID {
	return s.add(&Actor{
		Kind:    KindQuad,
		Quad:    quad,
		Color:   color,
		Opacity: opacity,
		Visible: true,
	})
}

// AddTexturedQuad implements Scene
func (s *MemoryScene) AddTexturedQuad(quad Quad, texture *image.Gray) ActorID {
	return s.add(&Actor{
		Kind:    KindTexturedQuad,
		Quad:    quad,
		Texture: texture,
		Visible: true,
	})
}

// SetVisible implements Scene
func (s *MemoryScene) SetVisible(id ActorID, visible bool) {
	if actor, ok := s.actors[id]; ok {
		actor.Visible = visible
	}
}

// RemoveIfPresent implements Scene
func (s *MemoryScene) RemoveIfPresent(id ActorID) bool {
	if _, ok := s.actors[id]; !ok {
		return false
	}
	delete(s.actors, id)
	return true
}

// Present implements Scene
func (s *MemoryScene) Present() {
	s.Presents++
}

// Actor returns the recorded actor for a handle, or nil
func (s *MemoryScene) Actor(id ActorID) *Actor {
	return s.actors[id]
}

// Count returns the number of live actors
func (s *MemoryScene) Count() int {
	return len(s.actors)
}

// CountKind returns the number of live actors of one kind
func (s *MemoryScene) CountKind(kind ActorKind) int {
	n := 0
	for _, actor := range s.actors {
		if actor.Kind == kind {
			n++
		}
	}
	return n
}

// VisibleOfKind returns the number of visible actors of one kind
func (s *MemoryScene) VisibleOfKind(kind ActorKind) int {
	n := 0
	for _, actor := range s.actors {
		if actor.Kind == kind && actor.Visible {
			n++
		}
	}
	return n
}

// Forget drops an actor without going through RemoveIfPresent, to
// simulate an externally vanished render object
func (s *MemoryScene) Forget(id ActorID) {
	delete(s.actors, id)
}
