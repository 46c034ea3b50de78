// Package render defines the boundary between the clipping/MPR engine
// and whatever actually draws the scene. The engine only ever adds,
// hides and removes actors through the Scene interface and asks for one
// Present per recompute; the raylib implementation lives in the app.
package render

import (
	"fmt"
	"image"
	"strconv"

	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// ActorID is a handle for a render object owned by a Scene. The zero
// value is never a valid handle.
type ActorID int

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// ParseHexColor parses a #RRGGBB string into an opaque color
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q (expected #RRGGBB)", s)
	}
	value, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}, nil
}

// Quad describes a bounded rectangle in 3D space, centered at Center and
// oriented orthogonal to Normal. Width and Height span the two axes
// orthogonal to the normal, in canonical axis order.
type Quad struct {
	Center geometry.Vector3
	Normal geometry.Vector3
	Width  float64
	Height float64
}

// Scene is the render surface the engine mutates. Implementations are
// not required to be safe for concurrent use; all engine calls happen on
// the UI thread.
type Scene interface {
	// AddMesh adds a triangle soup actor and returns its handle
	AddMesh(triangles []geometry.Triangle, color Color, opacity float64) ActorID

	// AddQuad adds a flat colored quad actor
	AddQuad(quad Quad, color Color, opacity float64) ActorID

	// AddTexturedQuad adds a quad actor textured with an 8-bit
	// grayscale image
	AddTexturedQuad(quad Quad, texture *image.Gray) ActorID

	// SetVisible toggles an actor without destroying it. Unknown
	// handles are ignored.
	SetVisible(id ActorID, visible bool)

	// RemoveIfPresent removes an actor, reporting whether it existed.
	// It never panics; removing an already-gone actor returns false.
	RemoveIfPresent(id ActorID) bool

	// Present flushes the scene to screen. Called once per recompute.
	Present()
}
