package math3d

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func matApproxEqual(a, b Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

var testAngles = []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 2 * math.Pi}

func TestRotationRoundTrip(t *testing.T) {
	rotations := []struct {
		name string
		fn   func(float64) Mat4
	}{
		{"X", RotateX},
		{"Y", RotateY},
		{"Z", RotateZ},
	}
	points := []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(1, 2, 3), V3(-4, 0.5, 7)}

	for _, rot := range rotations {
		for _, theta := range testAngles {
			for _, p := range points {
				fwd, ok := rot.fn(theta).Apply(p)
				if !ok {
					t.Fatalf("rotate%s(%v) produced w=0", rot.name, theta)
				}
				back, _ := rot.fn(-theta).Apply(fwd)
				if !back.Equal(p) {
					t.Errorf("rotate%s(%v) round trip of %v = %v", rot.name, theta, p, back)
				}
			}
		}
	}
}

func TestRotationOrthonormal(t *testing.T) {
	for _, theta := range append(testAngles, 0.3, -1.7) {
		for _, m := range []Mat4{RotateX(theta), RotateY(theta), RotateZ(theta)} {
			if d := m.Determinant(); math.Abs(d-1) > 1e-9 {
				t.Errorf("determinant = %v, want 1", d)
			}
			if !matApproxEqual(m.Mul(m.Transpose()), Identity(), 1e-9) {
				t.Errorf("M·Mᵀ != I for theta %v", theta)
			}
		}
	}
}

func TestRotationMatchesMgl(t *testing.T) {
	for _, theta := range append(testAngles, 0.3, -1.7) {
		if !matApproxEqual(RotateX(theta), FromMgl(mgl64.HomogRotate3DX(theta)), 1e-12) {
			t.Errorf("RotateX(%v) differs from mgl64", theta)
		}
		if !matApproxEqual(RotateY(theta), FromMgl(mgl64.HomogRotate3DY(theta)), 1e-12) {
			t.Errorf("RotateY(%v) differs from mgl64", theta)
		}
		if !matApproxEqual(RotateZ(theta), FromMgl(mgl64.HomogRotate3DZ(theta)), 1e-12) {
			t.Errorf("RotateZ(%v) differs from mgl64", theta)
		}
	}
}

func TestRightHandRotation(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"X takes Y to Z", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"Y takes Z to X", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"Z takes X to Y", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := tc.m.Apply(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMulAppliesLeftFirst(t *testing.T) {
	// Translate then rotate differs from rotate then translate.
	tr := Translate(V3(1, 0, 0))
	rz := RotateZ(math.Pi / 2)
	p := V3(1, 0, 0)

	got, _ := tr.Mul(rz).Apply(p)
	if want := V3(0, 2, 0); !got.Equal(want) {
		t.Errorf("translate·rotate = %v, want %v", got, want)
	}
	got, _ = rz.Mul(tr).Apply(p)
	if want := V3(1, 1, 0); !got.Equal(want) {
		t.Errorf("rotate·translate = %v, want %v", got, want)
	}
}

func TestMglRoundTrip(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	if FromMgl(m.Mgl()) != m {
		t.Error("mgl round trip changed the matrix")
	}
	// Same point through both conventions.
	p := V3(0.5, -1, 2)
	got, _ := m.Apply(p)
	want := mgl64.TransformCoordinate(mgl64.Vec3{p.X, p.Y, p.Z}, m.Mgl())
	if !got.Equal(V3(want[0], want[1], want[2])) {
		t.Errorf("got %v, mgl64 gives %v", got, want)
	}
}

func TestProjectionDepthMonotonic(t *testing.T) {
	const near, far = 0.1, 1000.0
	proj, err := Projection(90, 1, near, far)
	if err != nil {
		t.Fatalf("projection: %v", err)
	}

	pNear, ok := proj.Apply(V3(0, 0, near))
	if !ok {
		t.Fatal("point at near plane should be projectable")
	}
	pFar, ok := proj.Apply(V3(0, 0, far))
	if !ok {
		t.Fatal("point at far plane should be projectable")
	}
	if pNear.Z == pFar.Z {
		t.Fatalf("near and far map to the same depth %v", pNear.Z)
	}
	if math.Abs(pNear.Z) > 1e-9 || math.Abs(pFar.Z-1) > 1e-9 {
		t.Errorf("near depth %v, far depth %v; want 0 and 1", pNear.Z, pFar.Z)
	}

	prev := math.Inf(-1)
	for z := near; z <= far; z *= 1.5 {
		p, _ := proj.Apply(V3(1, 1, z))
		if p.Z <= prev {
			t.Fatalf("depth not increasing at z=%v: %v <= %v", z, p.Z, prev)
		}
		prev = p.Z
	}
}

func TestProjectionFieldOfView(t *testing.T) {
	// With a 90° fov a point at x == z lands on the edge of clip space.
	proj, err := Projection(90, 1, 0.1, 100)
	if err != nil {
		t.Fatalf("projection: %v", err)
	}
	p, _ := proj.Apply(V3(5, -5, 5))
	if !p.ApproxEqual(V3(1, -1, p.Z), 1e-9) {
		t.Errorf("got %v, want x=1 y=-1", p)
	}

	wide, _ := Projection(90, 2, 0.1, 100)
	p, _ = wide.Apply(V3(5, 5, 5))
	if math.Abs(p.X-0.5) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Errorf("aspect 2: got %v, want x=0.5 y=1", p)
	}
}

func TestProjectionInvalidParams(t *testing.T) {
	tests := []struct {
		name                   string
		fov, aspect, near, far float64
	}{
		{"near equals far", 90, 1, 10, 10},
		{"far before near", 90, 1, 10, 1},
		{"zero fov", 0, 1, 0.1, 100},
		{"negative fov", -30, 1, 0.1, 100},
		{"straight angle fov", 180, 1, 0.1, 100},
		{"zero near", 90, 1, 0, 100},
		{"zero aspect", 90, 0, 0.1, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Projection(tc.fov, tc.aspect, tc.near, tc.far)
			if !errors.Is(err, ErrInvalidProjectionParams) {
				t.Errorf("got %v, want ErrInvalidProjectionParams", err)
			}
		})
	}
}

func TestApplyZeroW(t *testing.T) {
	proj, _ := Projection(90, 1, 0.1, 100)
	p, ok := proj.Apply(V3(2, 3, 0))
	if ok {
		t.Fatal("camera-plane point should not be projectable")
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) || math.IsInf(p.X, 0) {
		t.Errorf("fallback produced non-finite %v", p)
	}
}

func TestRotateXYZMatchesComposition(t *testing.T) {
	tests := []struct{ x, y, z float64 }{
		{0, 0, 0},
		{math.Pi / 2, 0, 0},
		{0.3, -1.1, 2.4},
		{-2, 0.7, -0.2},
	}

	for _, tc := range tests {
		got := RotateXYZ(tc.x, tc.y, tc.z)
		want := RotateX(tc.x).Mul(RotateY(tc.y)).Mul(RotateZ(tc.z))
		if !matApproxEqual(got, want, 1e-12) {
			t.Errorf("RotateXYZ(%v, %v, %v) = %v, want %v", tc.x, tc.y, tc.z, got, want)
		}
	}

	// x is applied first: a quarter turn about x then z sends Y to Z.
	got, _ := RotateXYZ(math.Pi/2, 0, math.Pi/2).Apply(V3(0, 1, 0))
	if !got.Equal(V3(0, 0, 1)) {
		t.Errorf("got %v, want (0, 0, 1)", got)
	}
}
