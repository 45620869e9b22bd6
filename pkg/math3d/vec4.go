package math3d

import "math"

// Vec4 represents a homogeneous 3D point.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns (X/W, Y/W, Z/W) and true.
// When W is within Epsilon of zero the point cannot be projected; the
// un-divided coordinates are returned together with false.
func (v Vec4) PerspectiveDivide() (Vec3, bool) {
	if math.Abs(v.W) < Epsilon {
		return Vec3{v.X, v.Y, v.Z}, false
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}, true
}
