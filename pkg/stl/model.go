// Package stl loads polygonal surface models from STL files. It is the
// mesh provider for the workstation: segmentation pipelines export one
// STL per anatomical structure and the engine consumes them read-only.
package stl

import (
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// Model represents a polygonal surface mesh
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// PointCount returns the number of vertices in the model. Vertices shared
// between facets are counted per facet; the engine only cares whether the
// count is zero.
func (m *Model) PointCount() int {
	return len(m.Triangles) * 3
}

// BoundingBox calculates the axis-aligned bounding box of the model.
// An empty model yields the empty sentinel box.
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
