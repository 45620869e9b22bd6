package models

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
)

func TestTriangleNormalWinding(t *testing.T) {
	tri := NewTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))

	n, err := tri.Normal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.Equal(math3d.V3(0, 0, 1)) {
		t.Errorf("normal = %v, want (0, 0, 1)", n)
	}

	n, err = tri.Reversed().Normal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.Equal(math3d.V3(0, 0, -1)) {
		t.Errorf("reversed normal = %v, want (0, 0, -1)", n)
	}
}

func TestTriangleNormalUnitLength(t *testing.T) {
	tri := NewTriangle(math3d.V3(-3, 2, 7), math3d.V3(10, 4, -1), math3d.V3(0.5, -6, 2))
	n, err := tri.Normal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("normal length = %v, want 1", n.Len())
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
	}{
		{"repeated vertex", NewTriangle(math3d.V3(0, 0, 0), math3d.V3(0, 0, 0), math3d.V3(1, 1, 1))},
		{"all equal", NewTriangle(math3d.V3(2, 2, 2), math3d.V3(2, 2, 2), math3d.V3(2, 2, 2))},
		{"collinear", NewTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), math3d.V3(2, 2, 2))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.tri.Normal(); !errors.Is(err, math3d.ErrDegenerateTriangle) {
				t.Errorf("got %v, want ErrDegenerateTriangle", err)
			}
			if tc.tri.IsFacingCamera(math3d.V3(0, 0, -10)) {
				t.Error("degenerate triangle should be culled")
			}
			if f := tc.tri.ShadeFactor(math3d.V3(0, 0, -1)); f != 0 {
				t.Errorf("shade factor = %v, want 0", f)
			}
		})
	}
}

func TestTriangleFacingCamera(t *testing.T) {
	camera := math3d.Zero3()
	// Counter-clockwise as seen from the origin looking down +z.
	front := NewTriangle(math3d.V3(0, 0, 5), math3d.V3(0, 1, 5), math3d.V3(1, 0, 5))

	if !front.IsFacingCamera(camera) {
		t.Error("triangle facing the camera was culled")
	}
	if front.Reversed().IsFacingCamera(camera) {
		t.Error("reversed triangle should be culled")
	}

	// Edge-on triangles are culled.
	edgeOn := NewTriangle(math3d.V3(0, 0, 5), math3d.V3(0, 1, 5), math3d.V3(0, 0, 6))
	if edgeOn.IsFacingCamera(camera) {
		t.Error("edge-on triangle should be culled")
	}
}

func TestTriangleShadeFactor(t *testing.T) {
	// Normal (0, 0, -1).
	tri := NewTriangle(math3d.V3(0, 0, 5), math3d.V3(0, 1, 5), math3d.V3(1, 0, 5))

	light, _ := math3d.V3(0, 0.5, -1).Normalize()
	tests := []struct {
		name  string
		light math3d.Vec3
		want  float64
	}{
		{"head on", math3d.V3(0, 0, -1), 1},
		{"from behind", math3d.V3(0, 0, 1), 0},
		{"grazing", math3d.V3(1, 0, 0), 0},
		{"default light", light, 2 / math.Sqrt(5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tri.ShadeFactor(tc.light); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTriangleTransformsArePure(t *testing.T) {
	orig := NewTriangle(math3d.V3(1, 2, 3), math3d.V3(4, 5, 6), math3d.V3(7, 8, 9))
	saved := orig

	moved := orig.Translate(math3d.V3(1, 1, 1))
	scaled := orig.Scale(2, 3, 4)
	rotated, err := orig.ApplyMatrix(math3d.RotateZ(math.Pi / 2))
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}

	if orig != saved {
		t.Errorf("source triangle changed to %v", orig)
	}
	if !moved.P[0].Equal(math3d.V3(2, 3, 4)) {
		t.Errorf("translate: got %v", moved.P[0])
	}
	if !scaled.P[2].Equal(math3d.V3(14, 24, 36)) {
		t.Errorf("scale: got %v", scaled.P[2])
	}
	if !rotated.P[0].Equal(math3d.V3(-2, 1, 3)) {
		t.Errorf("rotate: got %v", rotated.P[0])
	}
}

func TestTriangleApplyMatrixUnprojectable(t *testing.T) {
	proj, err := math3d.Projection(90, 1, 0.1, 100)
	if err != nil {
		t.Fatalf("projection: %v", err)
	}
	tri := NewTriangle(math3d.V3(0, 0, 5), math3d.V3(1, 0, 0), math3d.V3(0, 1, 5))

	out, err := tri.ApplyMatrix(proj)
	if !errors.Is(err, math3d.ErrUnprojectable) {
		t.Fatalf("got %v, want ErrUnprojectable", err)
	}
	if math.IsNaN(out.P[1].X) || math.IsInf(out.P[1].X, 0) {
		t.Errorf("fallback vertex is not finite: %v", out.P[1])
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(math3d.V3(0, 0, 0), math3d.V3(3, 0, 0), math3d.V3(0, 3, 6))
	if c := tri.Centroid(); !c.Equal(math3d.V3(1, 1, 2)) {
		t.Errorf("centroid = %v, want (1, 1, 2)", c)
	}
}

func TestTriangleNormalScaleInvariant(t *testing.T) {
	for _, size := range []float64{1e-5, 1e-3, 1, 1e6} {
		mesh := Cube().Fit(size)
		for i, tri := range mesh.Triangles {
			n, err := tri.Normal()
			if err != nil {
				t.Fatalf("size %g triangle %d: %v", size, i, err)
			}
			if l := n.Len(); l < 1-1e-9 || l > 1+1e-9 {
				t.Errorf("size %g triangle %d: |n| = %v", size, i, l)
			}
		}
	}

	// A sliver is degenerate at any scale.
	for _, s := range []float64{1e-5, 1, 1e5} {
		sliver := NewTriangle(math3d.V3(0, 0, 0), math3d.V3(s, 0, 0), math3d.V3(2*s, s*1e-12, 0))
		if _, err := sliver.Normal(); !errors.Is(err, math3d.ErrDegenerateTriangle) {
			t.Errorf("scale %g sliver: got %v, want ErrDegenerateTriangle", s, err)
		}
	}
}
