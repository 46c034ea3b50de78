package volume

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/philipparndt/goanatomy/pkg/geometry"
)

// Slice is a 2D scalar raster extracted from a volume, stored row-major
// with Data[y*Width+x].
type Slice struct {
	Width  int
	Height int
	Data   []float64
}

// SliceIndex maps a position percentage in [0,100] to the voxel index
// along the given axis: round(percent/100 * (dim-1)), clamped to the
// valid range. Percent 0 is the first slice, percent 100 the last.
func (v *Volume) SliceIndex(axis geometry.Axis, percent float64) int {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	dim := v.Dim(axis)
	idx := int(math.Round(percent / 100.0 * float64(dim-1)))
	if idx < 0 {
		idx = 0
	} else if idx > dim-1 {
		idx = dim - 1
	}
	return idx
}

// Extract returns the 2D cross-section orthogonal to axis at the given
// position percentage. Raster axes follow canonical order: sagittal (x)
// slices are (y,z), coronal (y) slices are (x,z), axial (z) slices are
// (x,y).
func (v *Volume) Extract(axis geometry.Axis, percent float64) Slice {
	i := v.SliceIndex(axis, percent)

	switch axis {
	case geometry.AxisX:
		s := Slice{Width: v.Ny, Height: v.Nz, Data: make([]float64, v.Ny*v.Nz)}
		for z := 0; z < v.Nz; z++ {
			for y := 0; y < v.Ny; y++ {
				s.Data[z*s.Width+y] = v.At(i, y, z)
			}
		}
		return s
	case geometry.AxisY:
		s := Slice{Width: v.Nx, Height: v.Nz, Data: make([]float64, v.Nx*v.Nz)}
		for z := 0; z < v.Nz; z++ {
			for x := 0; x < v.Nx; x++ {
				s.Data[z*s.Width+x] = v.At(x, i, z)
			}
		}
		return s
	default:
		s := Slice{Width: v.Nx, Height: v.Ny, Data: make([]float64, v.Nx*v.Ny)}
		for y := 0; y < v.Ny; y++ {
			for x := 0; x < v.Nx; x++ {
				s.Data[y*s.Width+x] = v.At(x, y, i)
			}
		}
		return s
	}
}

// ExtractOriented extracts a slice and rotates it into the canonical
// on-screen orientation. The same 90 degree counter-clockwise rotation
// is applied for all three axes so adjacent slices stay comparable.
func (v *Volume) ExtractOriented(axis geometry.Axis, percent float64) Slice {
	return v.Extract(axis, percent).Rotate90()
}

// Rotate90 returns the slice rotated 90 degrees counter-clockwise
func (s Slice) Rotate90() Slice {
	dst := Slice{
		Width:  s.Height,
		Height: s.Width,
		Data:   make([]float64, len(s.Data)),
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			dst.Data[(s.Width-1-x)*dst.Width+y] = s.Data[y*s.Width+x]
		}
	}
	return dst
}

// Normalize maps the slice scalar range to 8-bit grayscale. The mapping
// is per-slice, not per-volume. A flat slice (min == max) yields an
// all-zero image rather than dividing by zero.
func (s Slice) Normalize() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	if len(s.Data) == 0 {
		return img
	}

	mn := floats.Min(s.Data)
	mx := floats.Max(s.Data)
	if mx <= mn {
		return img
	}

	scale := 255.0 / (mx - mn)
	for y := 0; y < s.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+s.Width]
		for x := 0; x < s.Width; x++ {
			pv := (s.Data[y*s.Width+x] - mn) * scale
			if pv > 255 {
				pv = 255
			}
			row[x] = uint8(pv)
		}
	}
	return img
}
