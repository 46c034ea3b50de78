package clipping

import (
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// BoundsCache lazily computes and caches the union bounding box of the
// structure set. Only original, pre-clip geometry participates; clipped
// results never feed back into the bounds. The cache must be explicitly
// invalidated when the structure set changes.
type BoundsCache struct {
	structures []*Structure
	cached     *geometry.BoundingBox
}

// NewBoundsCache creates a cache over the given structure set
func NewBoundsCache(structures []*Structure) *BoundsCache {
	return &BoundsCache{structures: structures}
}

// SetStructures replaces the structure set and invalidates the cache
func (c *BoundsCache) SetStructures(structures []*Structure) {
	c.structures = structures
	c.cached = nil
}

// Invalidate discards the cached bounds so the next access recomputes
func (c *BoundsCache) Invalidate() {
	c.cached = nil
}

// Bounds returns the union bounding box across all structures with
// points, computing it on first access. Structures with zero points are
// skipped. When nothing has points the empty sentinel box is returned
// and callers treat plane positioning as a no-op.
func (c *BoundsCache) Bounds() geometry.BoundingBox {
	if c.cached != nil {
		return *c.cached
	}

	bbox := geometry.NewBoundingBox()
	for _, structure := range c.structures {
		if !structure.HasPoints() {
			continue
		}
		bbox.Union(structure.Mesh.BoundingBox())
	}

	c.cached = &bbox
	return bbox
}
