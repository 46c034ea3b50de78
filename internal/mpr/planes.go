// Package mpr renders multi-planar reconstruction planes: three
// textured quads carrying grayscale volume slices, one per anatomical
// axis, positioned in the volume's own voxel frame.
package mpr

import (
	"fmt"

	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/geometry"
	"github.com/philipparndt/goanatomy/pkg/volume"
)

// PlaneRenderer owns the three MPR plane actors. Plane positions are
// tracked per axis and are fully independent of any mesh clipping
// state; the quads live in the volume frame [0,nx]x[0,ny]x[0,nz], never
// in mesh bounds. Every position change synchronously re-extracts the
// slice and rebuilds the quad for that axis alone.
type PlaneRenderer struct {
	scene    render.Scene
	volume   *volume.Volume
	percents [3]float64
	actors   [3]render.ActorID
	enabled  bool
}

// NewPlaneRenderer creates a renderer over the given volume with all
// three planes at the default position, not yet shown
func NewPlaneRenderer(scene render.Scene, vol *volume.Volume, defaultPercent float64) *PlaneRenderer {
	r := &PlaneRenderer{scene: scene, volume: vol}
	for _, axis := range geometry.Axes {
		r.percents[axis] = clampPercent(defaultPercent)
	}
	return r
}

// Enabled reports whether the MPR planes are currently shown
func (r *PlaneRenderer) Enabled() bool {
	return r.enabled
}

// Position returns the plane position for an axis in percent
func (r *PlaneRenderer) Position(axis geometry.Axis) float64 {
	return r.percents[axis]
}

// SetEnabled shows or removes all three plane actors. Positions are
// preserved across a disable/enable cycle.
func (r *PlaneRenderer) SetEnabled(enabled bool) {
	if r.enabled == enabled {
		return
	}
	r.enabled = enabled
	if enabled {
		for _, axis := range geometry.Axes {
			r.rebuild(axis)
		}
	} else {
		for _, axis := range geometry.Axes {
			r.remove(axis)
		}
	}
	r.scene.Present()
}

// Toggle flips the enabled state
func (r *PlaneRenderer) Toggle() {
	r.SetEnabled(!r.enabled)
}

// SetPosition moves one plane. Only that axis is re-extracted and
// rebuilt; the other two actors are untouched. Moving a plane while
// disabled just records the position for the next enable.
func (r *PlaneRenderer) SetPosition(axis geometry.Axis, percent float64) {
	r.percents[axis] = clampPercent(percent)
	if !r.enabled {
		return
	}
	r.rebuild(axis)
	r.scene.Present()
}

// SetVolume swaps the dataset. Shown planes are rebuilt against the new
// volume at their current positions.
func (r *PlaneRenderer) SetVolume(vol *volume.Volume) {
	r.volume = vol
	if !r.enabled {
		return
	}
	for _, axis := range geometry.Axes {
		r.rebuild(axis)
	}
	r.scene.Present()
}

// rebuild discards and recreates the textured quad for one axis. The
// quad sits at the continuous position along the axis while the texture
// comes from the nearest voxel slice, so plane placement stays smooth
// under slider drags.
func (r *PlaneRenderer) rebuild(axis geometry.Axis) {
	r.remove(axis)
	if r.volume == nil {
		return
	}

	slice := r.volume.ExtractOriented(axis, r.percents[axis])
	texture := slice.Normalize()

	a, b := axis.Orthogonal()
	center := geometry.NewVector3(
		float64(r.volume.Nx)/2,
		float64(r.volume.Ny)/2,
		float64(r.volume.Nz)/2,
	)
	pos := r.percents[axis] / 100.0 * float64(r.volume.Dim(axis))
	center = center.WithComponent(int(axis), pos)

	quad := render.Quad{
		Center: center,
		Normal: axis.Normal(),
		Width:  float64(r.volume.Dim(a)),
		Height: float64(r.volume.Dim(b)),
	}
	r.actors[axis] = r.scene.AddTexturedQuad(quad, texture)
}

func (r *PlaneRenderer) remove(axis geometry.Axis) {
	id := r.actors[axis]
	if id == 0 {
		return
	}
	if !r.scene.RemoveIfPresent(id) {
		fmt.Printf("Warning: mpr plane for %s already removed\n", axis)
	}
	r.actors[axis] = 0
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
