package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/sphere"
)

func TestTessellateSingleSphere(t *testing.T) {
	s := sphere.Sphere{Center: geometry.NewVector3(10, -5, 3), Radius: 4}
	model, err := Tessellate("ball", []sphere.Sphere{s}, 40)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if model.TriangleCount() == 0 {
		t.Fatal("expected triangles")
	}

	want := 4.0 / 3 * math.Pi * 64
	got := math.Abs(model.Volume())
	if math.Abs(got-want)/want > 0.05 {
		t.Errorf("volume = %v, want about %v", got, want)
	}

	for _, tri := range model.Triangles {
		for _, v := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			if d := v.Distance(s.Center); math.Abs(d-s.Radius) > 0.5 {
				t.Fatalf("vertex %v is %v from the center", v, d)
			}
		}
	}
	t.Logf("sphere triangle count: %d", model.TriangleCount())
}

func TestTessellateUnion(t *testing.T) {
	spheres := []sphere.Sphere{
		{Center: geometry.NewVector3(0, 0, 0), Radius: 5},
		{Center: geometry.NewVector3(8, 0, 0), Radius: 5},
	}
	model, err := Tessellate("pair", spheres, 48)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	// two balls minus the lens, made of two caps of height 1
	ball := 4.0 / 3 * math.Pi * 125
	lensCap := math.Pi * (3*5 - 1) / 3
	want := 2*ball - 2*lensCap
	got := math.Abs(model.Volume())
	if math.Abs(got-want)/want > 0.05 {
		t.Errorf("volume = %v, want about %v", got, want)
	}

	bbox := model.BoundingBox()
	if bbox.Min.X > -4.5 || bbox.Max.X < 12.5 {
		t.Errorf("unexpected bounds %v .. %v", bbox.Min, bbox.Max)
	}
}

func TestTessellateErrors(t *testing.T) {
	if _, err := Tessellate("none", nil, 40); !errors.Is(err, ErrNoSpheres) {
		t.Errorf("expected ErrNoSpheres, got %v", err)
	}
	one := []sphere.Sphere{{Radius: 1}}
	if _, err := Tessellate("coarse", one, 4); err == nil {
		t.Error("expected error for too few cells")
	}
	if _, err := Tessellate("bad", []sphere.Sphere{{Radius: -1}}, 40); err == nil {
		t.Error("expected error for negative radius")
	}
}
