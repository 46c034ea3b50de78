package geometry

import "testing"

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Fatalf("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 5, 0))

	if bbox.IsEmpty() {
		t.Fatalf("extended bounding box should not be empty")
	}
	if bbox.Min != NewVector3(-1, 2, 0) {
		t.Errorf("Min failed: got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(1, 5, 3) {
		t.Errorf("Max failed: got %v", bbox.Max)
	}
}

func TestBoundingBoxUnionEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(1, 1, 1))

	// Union with an empty box must not disturb the result
	bbox.Union(NewBoundingBox())

	if bbox.Min != NewVector3(0, 0, 0) || bbox.Max != NewVector3(1, 1, 1) {
		t.Errorf("Union with empty box changed bounds: %v %v", bbox.Min, bbox.Max)
	}
}

func TestBoundingBoxCenterAndExtent(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	if bbox.Center() != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: got %v", bbox.Center())
	}

	for axis, want := range []float64{10, 20, 30} {
		if got := bbox.Extent(axis); got != want {
			t.Errorf("Extent(%d): expected %v, got %v", axis, want, got)
		}
	}
}

func TestBoundingBoxAt(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 10, 10))

	if got := bbox.At(0, 0.5); got != 5 {
		t.Errorf("At(0, 0.5): expected 5, got %v", got)
	}
	if got := bbox.At(2, 0); got != 0 {
		t.Errorf("At(2, 0): expected 0, got %v", got)
	}
	if got := bbox.At(1, 1); got != 10 {
		t.Errorf("At(1, 1): expected 10, got %v", got)
	}
}
