package clipping

import (
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// ClipPlane is one axis-aligned cutting plane. The normal is fixed per
// axis; the origin is derived from the position percentage and the
// current bounds and is never set directly.
type ClipPlane struct {
	Axis    geometry.Axis
	Percent float64
	Origin  geometry.Vector3
	Normal  geometry.Vector3
}

// PlaneManager owns the active clipping planes, at most one per axis.
// Every mutation synchronously recomputes the clipped meshes and the
// plane visuals; there is no debouncing, every discrete UI event
// produces one full recompute.
type PlaneManager struct {
	bounds         *BoundsCache
	engine         *MeshClipEngine
	visual         *PlaneVisualizer
	planes         [3]*ClipPlane
	defaultPercent float64
}

// NewPlaneManager wires the manager to its bounds source, clip engine
// and plane visualizer. visual may be nil when running headless.
func NewPlaneManager(bounds *BoundsCache, engine *MeshClipEngine, visual *PlaneVisualizer, defaultPercent float64) *PlaneManager {
	return &PlaneManager{
		bounds:         bounds,
		engine:         engine,
		visual:         visual,
		defaultPercent: clampPercent(defaultPercent),
	}
}

// Enabled reports whether the axis has an active plane
func (m *PlaneManager) Enabled(axis geometry.Axis) bool {
	return m.planes[axis] != nil
}

// Position returns the active plane position for the axis, or the
// default when the axis is disabled
func (m *PlaneManager) Position(axis geometry.Axis) float64 {
	if plane := m.planes[axis]; plane != nil {
		return plane.Percent
	}
	return m.defaultPercent
}

// ActivePlanes returns the active planes in fixed axis order. The cut
// order is deterministic: X, then Y, then Z.
func (m *PlaneManager) ActivePlanes() []ClipPlane {
	planes := make([]ClipPlane, 0, 3)
	for _, axis := range geometry.Axes {
		if plane := m.planes[axis]; plane != nil {
			planes = append(planes, *plane)
		}
	}
	return planes
}

// Enable activates the clipping plane for an axis at the default
// position. Enabling an already-enabled axis is a no-op.
func (m *PlaneManager) Enable(axis geometry.Axis) {
	if m.planes[axis] != nil {
		return
	}
	plane := &ClipPlane{
		Axis:    axis,
		Percent: m.defaultPercent,
		Normal:  axis.Normal(),
	}
	m.planes[axis] = plane
	m.updateOrigin(plane)
	m.recompute()
}

// Disable removes the clipping plane for an axis and immediately
// recomputes so the scene reflects the removal without delay
func (m *PlaneManager) Disable(axis geometry.Axis) {
	if m.planes[axis] == nil {
		return
	}
	m.planes[axis] = nil
	if m.visual != nil {
		m.visual.Hide(axis)
	}
	m.recompute()
}

// SetPosition moves an active plane. Percent is clamped to [0,100].
// Disabled axes are left untouched. This runs on every slider drag
// tick, so everything downstream recomputes from cached bounds.
func (m *PlaneManager) SetPosition(axis geometry.Axis, percent float64) {
	plane := m.planes[axis]
	if plane == nil {
		return
	}
	plane.Percent = clampPercent(percent)
	m.updateOrigin(plane)
	m.recompute()
}

// Reset disables all axes and invalidates the cached bounds
func (m *PlaneManager) Reset() {
	for _, axis := range geometry.Axes {
		m.planes[axis] = nil
	}
	if m.visual != nil {
		m.visual.HideAll()
	}
	m.bounds.Invalidate()
	m.recompute()
}

// updateOrigin derives the plane origin from the bounds snapshot: the
// bounds center with the axis coordinate placed at the percentage
// between min and max. Empty bounds leave the origin untouched; with no
// geometry the cut is a no-op anyway.
func (m *PlaneManager) updateOrigin(plane *ClipPlane) {
	bounds := m.bounds.Bounds()
	if bounds.IsEmpty() {
		return
	}
	origin := bounds.Center()
	pos := bounds.At(int(plane.Axis), plane.Percent/100.0)
	plane.Origin = origin.WithComponent(int(plane.Axis), pos)
}

// recompute pushes the current plane set through the clip engine and
// refreshes the plane visuals, synchronously
func (m *PlaneManager) recompute() {
	active := m.ActivePlanes()
	if m.visual != nil {
		bounds := m.bounds.Bounds()
		for _, plane := range active {
			m.visual.Show(plane, bounds)
		}
	}
	m.engine.Recompute(active)
}

func clampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
