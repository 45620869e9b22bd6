package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := RotateX(0.3)
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4Apply(b *testing.B) {
	m, _ := Projection(100, 1, 0.1, 1000)
	v := V3(1, 2, 3)

	for b.Loop() {
		_, _ = m.Apply(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_, _ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkProjection(b *testing.B) {
	for b.Loop() {
		_, _ = Projection(100, 1, 0.1, 1000)
	}
}
