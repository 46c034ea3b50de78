// Package volume holds the voxel side of the workstation: a scalar 3D
// grid and the multi-planar reconstruction (MPR) slice extraction that
// turns plane positions into displayable 2D rasters.
package volume

import (
	"fmt"
	"math"

	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// Volume is a regular 3D scalar grid. Data is stored in row-major order
// with x varying fastest: index = (z*Ny + y)*Nx + x. The grid is
// read-only to the slicing code.
type Volume struct {
	Data []float64
	Nx   int
	Ny   int
	Nz   int
}

// New creates a zero-filled volume with the given dimensions
func New(nx, ny, nz int) (*Volume, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("invalid volume dimensions %dx%dx%d", nx, ny, nz)
	}
	return &Volume{
		Data: make([]float64, nx*ny*nz),
		Nx:   nx,
		Ny:   ny,
		Nz:   nz,
	}, nil
}

// FromData wraps existing scalar data. The slice length must match the
// dimensions exactly.
func FromData(data []float64, nx, ny, nz int) (*Volume, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("invalid volume dimensions %dx%dx%d", nx, ny, nz)
	}
	if len(data) != nx*ny*nz {
		return nil, fmt.Errorf("data length %d does not match dimensions %dx%dx%d",
			len(data), nx, ny, nz)
	}
	return &Volume{Data: data, Nx: nx, Ny: ny, Nz: nz}, nil
}

// At returns the scalar value at voxel (x, y, z)
func (v *Volume) At(x, y, z int) float64 {
	return v.Data[(z*v.Ny+y)*v.Nx+x]
}

// Set writes the scalar value at voxel (x, y, z)
func (v *Volume) Set(x, y, z int, value float64) {
	v.Data[(z*v.Ny+y)*v.Nx+x] = value
}

// Dim returns the number of voxels along the given axis
func (v *Volume) Dim(axis geometry.Axis) int {
	switch axis {
	case geometry.AxisX:
		return v.Nx
	case geometry.AxisY:
		return v.Ny
	}
	return v.Nz
}

// Bounds returns the volume-local coordinate frame [0,nx]x[0,ny]x[0,nz].
// MPR plane placement uses this frame; it is never derived from surface
// mesh bounds.
func (v *Volume) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(0, 0, 0))
	bbox.Extend(geometry.NewVector3(float64(v.Nx), float64(v.Ny), float64(v.Nz)))
	return bbox
}

// NewPhantom builds a synthetic test volume: a radial intensity gradient
// around the grid center with a brighter spherical core. Useful for
// demos and tests when no scan data is at hand.
func NewPhantom(nx, ny, nz int) (*Volume, error) {
	v, err := New(nx, ny, nz)
	if err != nil {
		return nil, err
	}

	cx := float64(nx-1) / 2
	cy := float64(ny-1) / 2
	cz := float64(nz-1) / 2
	maxR := math.Sqrt(cx*cx+cy*cy+cz*cz) + 1e-12

	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				dz := float64(z) - cz
				r := math.Sqrt(dx*dx+dy*dy+dz*dz) / maxR
				value := 1.0 - r
				if r < 0.25 {
					value = 1.0
				}
				v.Set(x, y, z, value)
			}
		}
	}
	return v, nil
}
