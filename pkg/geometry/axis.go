package geometry

import "fmt"

// Axis identifies one of the three coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists all three axes in canonical order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Normal returns the fixed unit normal for a plane orthogonal to the axis
func (a Axis) Normal() Vector3 {
	switch a {
	case AxisX:
		return NewVector3(1, 0, 0)
	case AxisY:
		return NewVector3(0, 1, 0)
	}
	return NewVector3(0, 0, 1)
}

// Orthogonal returns the other two axes, in canonical order
func (a Axis) Orthogonal() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	}
	return AxisX, AxisY
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// ParseAxis converts "x", "y" or "z" (case-insensitive) into an Axis
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return AxisX, fmt.Errorf("invalid axis %q (expected x, y or z)", s)
}

// AnatomicalName returns the radiological plane name for slices
// orthogonal to the axis
func (a Axis) AnatomicalName() string {
	switch a {
	case AxisX:
		return "sagittal"
	case AxisY:
		return "coronal"
	}
	return "axial"
}
