package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4x4 matrix stored in row-major order and applied to row
// vectors: v' = v·M.
//
// Memory layout (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
//
// Rows 0-2 hold the transformed X, Y and Z basis vectors, row 3 the
// translation. The flat array is identical to the column-major layout of
// the equivalent column-vector matrix, so it converts to and from mgl64
// without reordering.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Projection creates a perspective projection matrix for a camera looking
// down +Z. fovDegrees is the field of view in degrees, aspect is
// width/height. Depth maps near to 0 and far to 1; w carries the
// camera-space z for the perspective divide.
func Projection(fovDegrees, aspect, near, far float64) (Mat4, error) {
	switch {
	case fovDegrees <= 0 || fovDegrees >= 180:
		return Mat4{}, fmt.Errorf("fov %g: %w", fovDegrees, ErrInvalidProjectionParams)
	case aspect <= 0:
		return Mat4{}, fmt.Errorf("aspect %g: %w", aspect, ErrInvalidProjectionParams)
	case near <= 0:
		return Mat4{}, fmt.Errorf("near %g: %w", near, ErrInvalidProjectionParams)
	case far <= near:
		return Mat4{}, fmt.Errorf("near %g, far %g: %w", near, far, ErrInvalidProjectionParams)
	}

	f := 1.0 / math.Tan(fovDegrees*0.5*math.Pi/180)
	q := far / (far - near)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, q, 1,
		0, 0, -near * q, 0,
	}, nil
}

// Mul multiplies two matrices: a * b.
// With row vectors, v·(a*b) applies a first and then b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// MulVec4 transforms a Vec4 (row vector times matrix).
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}

// Apply transforms v as a point (w=1) and performs the perspective divide.
// If the resulting w is within Epsilon of zero, the un-divided coordinates
// are returned with ok=false.
func (m Mat4) Apply(v Vec3) (out Vec3, ok bool) {
	return m.MulVec4(V4FromV3(v, 1)).PerspectiveDivide()
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	return m[0]*(m[5]*(m[10]*m[15]-m[14]*m[11])-m[9]*(m[6]*m[15]-m[14]*m[7])+m[13]*(m[6]*m[11]-m[10]*m[7])) -
		m[4]*(m[1]*(m[10]*m[15]-m[14]*m[11])-m[9]*(m[2]*m[15]-m[14]*m[3])+m[13]*(m[2]*m[11]-m[10]*m[3])) +
		m[8]*(m[1]*(m[6]*m[15]-m[14]*m[7])-m[5]*(m[2]*m[15]-m[14]*m[3])+m[13]*(m[2]*m[7]-m[6]*m[3])) -
		m[12]*(m[1]*(m[6]*m[11]-m[10]*m[7])-m[5]*(m[2]*m[11]-m[10]*m[3])+m[9]*(m[2]*m[7]-m[6]*m[3]))
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row*4+col]
}

// RotateXYZ returns RotateX(x)·RotateY(y)·RotateZ(z): row vectors are
// turned about x first, then y, then z. It is composed with mgl64, whose
// column-vector product Rz·Ry·Rx is the same transform.
func RotateXYZ(x, y, z float64) Mat4 {
	m := mgl64.HomogRotate3DZ(z).Mul4(mgl64.HomogRotate3DY(y)).Mul4(mgl64.HomogRotate3DX(x))
	return FromMgl(m)
}

// FromMgl converts a column-vector mgl64 matrix into the equivalent
// row-vector Mat4.
func FromMgl(m mgl64.Mat4) Mat4 {
	return Mat4(m)
}

// Mgl returns the equivalent column-vector mgl64 matrix.
func (m Mat4) Mgl() mgl64.Mat4 {
	return mgl64.Mat4(m)
}
