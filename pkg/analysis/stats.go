// Package analysis computes summary statistics for loaded structures
// and extracted slices, shown in the CLI and the viewer status panels.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/goanatomy/pkg/geometry"
	"github.com/philipparndt/goanatomy/pkg/stl"
	"github.com/philipparndt/goanatomy/pkg/volume"
)

// SliceStats summarizes the intensity distribution of one 2D slice
type SliceStats struct {
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
	Entropy float64
}

// AnalyzeSlice computes intensity statistics for a slice. An empty slice
// yields the zero value.
func AnalyzeSlice(s volume.Slice) SliceStats {
	if len(s.Data) == 0 {
		return SliceStats{}
	}

	mean := stat.Mean(s.Data, nil)
	variance := stat.Variance(s.Data, nil)
	if math.IsNaN(variance) {
		variance = 0
	}

	return SliceStats{
		Min:     floats.Min(s.Data),
		Max:     floats.Max(s.Data),
		Mean:    mean,
		StdDev:  math.Sqrt(variance),
		Entropy: shannonEntropy(s.Data),
	}
}

// shannonEntropy bins the data into 256 intensity bins and computes the
// Shannon entropy of the histogram. A flat distribution has entropy 0.
func shannonEntropy(data []float64) float64 {
	mn := floats.Min(data)
	mx := floats.Max(data)
	if mx <= mn {
		return 0
	}

	const numBins = 256
	hist := make([]float64, numBins)
	binWidth := (mx - mn) / float64(numBins)

	for _, v := range data {
		binIdx := int((v - mn) / binWidth)
		if binIdx >= numBins {
			binIdx = numBins - 1
		} else if binIdx < 0 {
			binIdx = 0
		}
		hist[binIdx]++
	}

	entropy := 0.0
	n := float64(len(data))
	for _, count := range hist {
		if count > 0 {
			p := count / n
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// StructureStats summarizes one surface mesh
type StructureStats struct {
	Name        string
	Triangles   int
	SurfaceArea float64
	Size        geometry.Vector3
	Center      geometry.Vector3
}

// AnalyzeStructure computes geometric statistics for a mesh. Empty
// meshes report zero size at the origin.
func AnalyzeStructure(model *stl.Model) StructureStats {
	stats := StructureStats{
		Name:      model.Name,
		Triangles: model.TriangleCount(),
	}

	bbox := model.BoundingBox()
	if !bbox.IsEmpty() {
		stats.SurfaceArea = model.SurfaceArea()
		stats.Size = bbox.Size()
		stats.Center = bbox.Center()
	}
	return stats
}
