package clipping

import (
	"fmt"

	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// PlaneVisualizer renders a translucent colored quad for each active
// clipping plane so the cut position is visible in the scene. The quads
// are purely cosmetic; hiding them does not affect the clipping itself.
type PlaneVisualizer struct {
	scene   render.Scene
	colors  [3]render.Color
	margin  float64
	opacity float64
	actors  [3]render.ActorID
	visible bool
}

// NewPlaneVisualizer creates a visualizer drawing into the given scene.
// Margin scales the quad beyond the mesh bounds so the plane edge stays
// visible; opacity is the quad alpha.
func NewPlaneVisualizer(scene render.Scene, colors [3]render.Color, margin, opacity float64) *PlaneVisualizer {
	return &PlaneVisualizer{
		scene:   scene,
		colors:  colors,
		margin:  margin,
		opacity: opacity,
		visible: true,
	}
}

// Show places the quad for the plane's axis at the plane origin, sized
// to cover the bounds cross-section plus margin. The old quad actor for
// the axis is discarded and rebuilt; with empty bounds there is nothing
// to cover and the axis quad is removed instead.
func (v *PlaneVisualizer) Show(plane ClipPlane, bounds geometry.BoundingBox) {
	v.remove(plane.Axis)
	if bounds.IsEmpty() {
		return
	}

	a, b := plane.Axis.Orthogonal()
	quad := render.Quad{
		Center: plane.Origin,
		Normal: plane.Normal,
		Width:  bounds.Extent(int(a)) * v.margin,
		Height: bounds.Extent(int(b)) * v.margin,
	}
	id := v.scene.AddQuad(quad, v.colors[plane.Axis], v.opacity)
	v.actors[plane.Axis] = id
	if !v.visible {
		v.scene.SetVisible(id, false)
	}
}

// Hide removes the quad for one axis
func (v *PlaneVisualizer) Hide(axis geometry.Axis) {
	v.remove(axis)
}

// HideAll removes every plane quad
func (v *PlaneVisualizer) HideAll() {
	for _, axis := range geometry.Axes {
		v.remove(axis)
	}
}

// SetVisible toggles all current plane quads without removing them.
// Newly shown quads inherit the toggle state.
func (v *PlaneVisualizer) SetVisible(visible bool) {
	v.visible = visible
	for _, id := range v.actors {
		if id == 0 {
			continue
		}
		v.scene.SetVisible(id, visible)
	}
}

// Visible reports the global quad toggle state
func (v *PlaneVisualizer) Visible() bool {
	return v.visible
}

func (v *PlaneVisualizer) remove(axis geometry.Axis) {
	id := v.actors[axis]
	if id == 0 {
		return
	}
	if !v.scene.RemoveIfPresent(id) {
		fmt.Printf("Warning: plane quad for %s already removed\n", axis)
	}
	v.actors[axis] = 0
}
