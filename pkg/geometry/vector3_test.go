package geometry

import (
	"math"
	"testing"
)

func TestVectorAddSub(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	sum := a.Add(b)
	if sum != NewVector3(5, 7, 9) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != NewVector3(3, 3, 3) {
		t.Errorf("Sub failed: got %v", diff)
	}
}

func TestVectorDotCross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)

	if d := x.Dot(y); d != 0 {
		t.Errorf("Dot of orthogonal vectors should be 0, got %v", d)
	}

	z := x.Cross(y)
	if z != NewVector3(0, 0, 1) {
		t.Errorf("Cross failed: expected (0,0,1), got %v", z)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	n := v.Normalize()

	if math.Abs(n.Length()-1.0) > 1e-10 {
		t.Errorf("Normalized length should be 1, got %v", n.Length())
	}

	// Zero vector normalizes to zero, not NaN
	zero := Vector3{}.Normalize()
	if zero != (Vector3{}) {
		t.Errorf("Zero vector should normalize to zero, got %v", zero)
	}
}

func TestVectorLerp(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, 20, 30)

	mid := a.Lerp(b, 0.5)
	if mid != NewVector3(5, 10, 15) {
		t.Errorf("Lerp at 0.5 failed: got %v", mid)
	}

	if a.Lerp(b, 0) != a {
		t.Errorf("Lerp at 0 should return start point")
	}
	if a.Lerp(b, 1) != b {
		t.Errorf("Lerp at 1 should return end point")
	}
}

func TestVectorComponent(t *testing.T) {
	v := NewVector3(1, 2, 3)

	for axis, want := range []float64{1, 2, 3} {
		if got := v.Component(axis); got != want {
			t.Errorf("Component(%d): expected %v, got %v", axis, want, got)
		}
	}

	w := v.WithComponent(1, 9)
	if w != NewVector3(1, 9, 3) {
		t.Errorf("WithComponent failed: got %v", w)
	}
	if v.Y != 2 {
		t.Errorf("WithComponent must not mutate the receiver")
	}
}
