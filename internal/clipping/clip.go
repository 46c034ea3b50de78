package clipping

import (
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// ClipHalfSpace cuts a triangle mesh against the infinite plane defined
// by origin and normal, keeping the half-space the normal points away
// from: a point survives when dot(point-origin, normal) < 0. Triangles
// straddling the plane are re-triangulated with new vertices on the
// plane. Points exactly on the plane count as kept so boundary vertices
// introduced by one cut survive subsequent cuts.
func ClipHalfSpace(triangles []geometry.Triangle, origin, normal geometry.Vector3) []geometry.Triangle {
	result := make([]geometry.Triangle, 0, len(triangles))
	for _, tri := range triangles {
		result = appendClipped(result, tri, origin, normal)
	}
	return result
}

// appendClipped clips one triangle and appends the surviving pieces
func appendClipped(dst []geometry.Triangle, tri geometry.Triangle, origin, normal geometry.Vector3) []geometry.Triangle {
	vertices := tri.Vertices()

	// Signed distance along the normal; inside is the negative side
	var dist [3]float64
	var inside [3]bool
	insideCount := 0
	for i, v := range vertices {
		dist[i] = v.Sub(origin).Dot(normal)
		inside[i] = dist[i] <= 0
		if inside[i] {
			insideCount++
		}
	}

	switch insideCount {
	case 3:
		return append(dst, tri)
	case 0:
		return dst
	}

	// Intersection parameter along the edge from vertex a to vertex b
	intersect := func(a, b int) geometry.Vector3 {
		t := dist[a] / (dist[a] - dist[b])
		return vertices[a].Lerp(vertices[b], t)
	}

	if insideCount == 1 {
		// One corner survives; it forms a smaller triangle with the two
		// plane intersection points
		var keep int
		for i := 0; i < 3; i++ {
			if inside[i] {
				keep = i
				break
			}
		}
		next := (keep + 1) % 3
		prev := (keep + 2) % 3

		newNext := intersect(keep, next)
		newPrev := intersect(keep, prev)

		return append(dst, geometry.NewTriangle(
			tri.Normal, vertices[keep], newNext, newPrev))
	}

	// Two corners survive; the quad left behind becomes two triangles
	var drop int
	for i := 0; i < 3; i++ {
		if !inside[i] {
			drop = i
			break
		}
	}
	next := (drop + 1) % 3
	prev := (drop + 2) % 3

	newNext := intersect(drop, next)
	newPrev := intersect(drop, prev)

	dst = append(dst, geometry.NewTriangle(
		tri.Normal, vertices[next], vertices[prev], newNext))
	dst = append(dst, geometry.NewTriangle(
		tri.Normal, vertices[prev], newPrev, newNext))
	return dst
}
