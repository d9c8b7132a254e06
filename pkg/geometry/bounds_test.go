package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	for _, p := range []Vector3{NewVector3(1, 2, 3), NewVector3(4, 5, 6), NewVector3(-1, 0, 2)} {
		bbox.Extend(p)
	}

	if bbox.Min != NewVector3(-1, 0, 2) {
		t.Errorf("Min failed: got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(4, 5, 6) {
		t.Errorf("Max failed: got %v", bbox.Max)
	}
}

func TestBoundingBoxMeasures(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 6))

	if size := bbox.Size(); size != NewVector3(2, 3, 6) {
		t.Errorf("Size failed: got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(1, 1.5, 3) {
		t.Errorf("Center failed: got %v", center)
	}
	if d := bbox.Diagonal(); math.Abs(d-7) > 1e-10 {
		t.Errorf("Diagonal failed: expected 7, got %v", d)
	}
	if v := bbox.Volume(); math.Abs(v-36) > 1e-10 {
		t.Errorf("Volume failed: expected 36, got %v", v)
	}
}

func TestBoundingBoxExtendSphere(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: new bounding box should be empty")
	}

	bbox.ExtendSphere(NewVector3(1, 2, 3), 2)
	bbox.ExtendSphere(NewVector3(0, 0, 0), 0.5)

	if bbox.Min != NewVector3(-1, -0.5, -0.5) {
		t.Errorf("Min failed: got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(3, 4, 5) {
		t.Errorf("Max failed: got %v", bbox.Max)
	}
	if bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: extended bounding box should not be empty")
	}
}
