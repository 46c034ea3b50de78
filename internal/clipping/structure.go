// Package clipping implements the plane-based spatial clipping engine:
// up to three axis-aligned cutting planes over a scene of polygonal
// structures, recomputed in full on every plane change.
package clipping

import (
	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/stl"
)

// Structure is one loaded anatomical surface. The engine never mutates
// Mesh; all clip results are derived geometry. Identity is positional:
// the engine keys render objects by the structure's index in the set,
// not by display name.
type Structure struct {
	Name    string
	Mesh    *stl.Model
	Color   render.Color
	Opacity float64
}

// HasPoints reports whether the structure carries any geometry
func (s *Structure) HasPoints() bool {
	return s != nil && s.Mesh != nil && s.Mesh.PointCount() > 0
}
