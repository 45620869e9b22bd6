package models

import (
	"fmt"
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// Triangle is an ordered triple of points. The winding order defines the
// face normal: (P[1]-P[0]) × (P[2]-P[0]), so a triangle that appears
// counter-clockwise from some viewpoint has its normal pointing toward it.
//
// Triangle is a value type; every transform returns a new Triangle.
type Triangle struct {
	P [3]math3d.Vec3
}

// NewTriangle creates a triangle from three points.
func NewTriangle(a, b, c math3d.Vec3) Triangle {
	return Triangle{P: [3]math3d.Vec3{a, b, c}}
}

// ApplyMatrix passes every vertex through m, including the perspective
// divide. If any vertex lands on w≈0 the result holds the un-divided
// coordinates and the error wraps math3d.ErrUnprojectable.
func (t Triangle) ApplyMatrix(m math3d.Mat4) (Triangle, error) {
	var out Triangle
	var err error
	for i, p := range t.P {
		q, ok := m.Apply(p)
		if !ok && err == nil {
			err = fmt.Errorf("vertex %d %v: %w", i, p, math3d.ErrUnprojectable)
		}
		out.P[i] = q
	}
	return out, err
}

// Translate returns the triangle moved by v.
func (t Triangle) Translate(v math3d.Vec3) Triangle {
	return Triangle{P: [3]math3d.Vec3{
		t.P[0].Add(v),
		t.P[1].Add(v),
		t.P[2].Add(v),
	}}
}

// Scale returns the triangle scaled per axis about the origin.
func (t Triangle) Scale(sx, sy, sz float64) Triangle {
	s := math3d.V3(sx, sy, sz)
	return Triangle{P: [3]math3d.Vec3{
		t.P[0].Mul(s),
		t.P[1].Mul(s),
		t.P[2].Mul(s),
	}}
}

// Reversed returns the triangle with the opposite winding order.
func (t Triangle) Reversed() Triangle {
	return Triangle{P: [3]math3d.Vec3{t.P[0], t.P[2], t.P[1]}}
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() math3d.Vec3 {
	return t.P[0].Add(t.P[1]).Add(t.P[2]).Scale(1.0 / 3)
}

// Normal returns the unit face normal.
// Zero-area triangles fail with math3d.ErrDegenerateTriangle. The test is
// relative to the edge lengths (the sine of the angle at P[0] must exceed
// math3d.Epsilon), so it does not depend on the mesh's scale.
func (t Triangle) Normal() (math3d.Vec3, error) {
	e1, e2 := t.P[1].Sub(t.P[0]), t.P[2].Sub(t.P[0])
	c := e1.Cross(e2)
	l := c.Len()
	if edges := e1.Len() * e2.Len(); edges == 0 || l <= math3d.Epsilon*edges {
		return math3d.Vec3{}, fmt.Errorf("triangle %v: %w", t.P, math3d.ErrDegenerateTriangle)
	}
	return c.Scale(1 / l), nil
}

// IsFacingCamera reports whether the front side of the triangle is visible
// from cameraLocation. Degenerate triangles never face the camera.
func (t Triangle) IsFacingCamera(cameraLocation math3d.Vec3) bool {
	n, err := t.Normal()
	if err != nil {
		return false
	}
	return FacesCamera(n, t.P[0], cameraLocation)
}

// ShadeFactor returns the diffuse light contribution normal·light, never
// below zero. Degenerate triangles receive no light.
func (t Triangle) ShadeFactor(lightDirection math3d.Vec3) float64 {
	n, err := t.Normal()
	if err != nil {
		return 0
	}
	return Lambert(n, lightDirection)
}

// FacesCamera is the back-face test for a precomputed normal n of a
// triangle that contains point p.
func FacesCamera(n, p, cameraLocation math3d.Vec3) bool {
	return n.Dot(p.Sub(cameraLocation)) < 0
}

// Lambert returns n·light clamped to a minimum of zero.
func Lambert(n, lightDirection math3d.Vec3) float64 {
	return math.Max(0, n.Dot(lightDirection))
}
