package math3d

import (
	"errors"
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"mul", a.Mul(b), V3(4, -10, 18)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"cross x y", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross y x", V3(0, 1, 0).Cross(V3(1, 0, 0)), V3(0, 0, -1)},
		{"min", a.Min(b), V3(1, -5, 3)},
		{"max", a.Max(b), V3(4, 2, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("dot = %v, want 12", got)
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("len = %v, want 5", got)
	}
	if got := V3(0, 0, 0).Distance(V3(0, 3, 4)); got != 5 {
		t.Errorf("distance = %v, want 5", got)
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	vectors := []Vec3{
		V3(1, 0, 0),
		V3(3, 4, 0),
		V3(-2, 7, 1.5),
		V3(1e-3, 2e-3, -5e-4),
		V3(1e6, -3e5, 42),
		V3(0, 0.5, -1),
	}

	for _, v := range vectors {
		n, err := v.Normalize()
		if err != nil {
			t.Fatalf("normalize %v: unexpected error %v", v, err)
		}
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Errorf("normalize %v: length %v, want 1", v, n.Len())
		}
		if n.Dot(v) <= 0 {
			t.Errorf("normalize %v: direction flipped to %v", v, n)
		}
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	for _, v := range []Vec3{Zero3(), V3(1e-12, 0, -1e-12)} {
		_, err := v.Normalize()
		if !errors.Is(err, ErrDegenerateVector) {
			t.Errorf("normalize %v: got %v, want ErrDegenerateVector", v, err)
		}
	}
}

func TestVec3CrossPerpendicular(t *testing.T) {
	pairs := [][2]Vec3{
		{V3(1, 2, 3), V3(4, 5, 6)},
		{V3(-1, 0.5, 2), V3(3, -2, 0.25)},
		{V3(0, 1, 0), V3(0, 0, 1)},
		{V3(2, 2, 2), V3(4, 4, 4)},
		{V3(0.1, -0.7, 0.3), V3(-5, 1, 9)},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		c := a.Cross(b)
		if d := c.Dot(a); math.Abs(d) > 1e-9 {
			t.Errorf("cross(%v, %v)·a = %v, want 0", a, b, d)
		}
		if d := c.Dot(b); math.Abs(d) > 1e-9 {
			t.Errorf("cross(%v, %v)·b = %v, want 0", a, b, d)
		}
	}
}

func TestVec3Equal(t *testing.T) {
	a := V3(1, 2, 3)
	if !a.Equal(V3(1+1e-10, 2, 3-1e-10)) {
		t.Error("vectors within epsilon should be equal")
	}
	if a.Equal(V3(1, 2, 3.001)) {
		t.Error("vectors outside epsilon should differ")
	}
	if !a.ApproxEqual(V3(1, 2, 3.001), 0.01) {
		t.Error("ApproxEqual should honor the supplied tolerance")
	}
}

func TestV3FromSlice(t *testing.T) {
	v, err := V3FromSlice([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != V3(1, 2, 3) {
		t.Errorf("got %v, want (1, 2, 3)", v)
	}

	for _, s := range [][]float64{nil, {1, 2}, {1, 2, 3, 4}} {
		if _, err := V3FromSlice(s); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("V3FromSlice(%v): got %v, want ErrInvalidOperand", s, err)
		}
	}
}

func TestVec4PerspectiveDivide(t *testing.T) {
	v, ok := V4(2, 4, 6, 2).PerspectiveDivide()
	if !ok || !v.Equal(V3(1, 2, 3)) {
		t.Errorf("got %v (ok=%v), want (1, 2, 3)", v, ok)
	}

	v, ok = V4(2, 4, 6, 0).PerspectiveDivide()
	if ok {
		t.Error("w=0 should not be projectable")
	}
	if !v.Equal(V3(2, 4, 6)) {
		t.Errorf("fallback = %v, want un-divided (2, 4, 6)", v)
	}
}
