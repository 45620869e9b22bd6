// Package models provides triangle meshes for facet.
package models

import (
	"fmt"
	"slices"

	"github.com/taigrr/facet/pkg/math3d"
)

// Mesh is an ordered sequence of triangles in model space.
// The pipeline never mutates a mesh; transforms return a new one.
type Mesh struct {
	Name      string
	Triangles []Triangle

	// Bounding box (calculated on construction)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh from triangles. The slice is copied.
func NewMesh(name string, tris ...Triangle) *Mesh {
	m := &Mesh{
		Name:      name,
		Triangles: slices.Clone(tris),
	}
	if m.Triangles == nil {
		m.Triangles = make([]Triangle, 0)
	}
	m.CalculateBounds()
	return m
}

// FromTriples builds a mesh from raw in-memory data: one entry per
// triangle, each holding three (x, y, z) triples.
// Malformed entries fail with math3d.ErrInvalidOperand.
func FromTriples(name string, data [][][]float64) (*Mesh, error) {
	tris := make([]Triangle, 0, len(data))
	for i, entry := range data {
		if len(entry) != 3 {
			return nil, fmt.Errorf("triangle %d has %d points: %w", i, len(entry), math3d.ErrInvalidOperand)
		}
		var t Triangle
		for j, raw := range entry {
			p, err := math3d.V3FromSlice(raw)
			if err != nil {
				return nil, fmt.Errorf("triangle %d point %d: %w", i, j, err)
			}
			t.P[j] = p
		}
		tris = append(tris, t)
	}
	return NewMesh(name, tris...), nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Triangles) == 0 {
		m.BoundsMin = math3d.Zero3()
		m.BoundsMax = math3d.Zero3()
		return
	}

	m.BoundsMin = m.Triangles[0].P[0]
	m.BoundsMax = m.Triangles[0].P[0]

	for _, t := range m.Triangles {
		for _, p := range t.P {
			m.BoundsMin = m.BoundsMin.Min(p)
			m.BoundsMax = m.BoundsMax.Max(p)
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertices (three per triangle).
func (m *Mesh) VertexCount() int {
	return 3 * len(m.Triangles)
}

// Transform returns a new mesh with every triangle passed through mat.
func (m *Mesh) Transform(mat math3d.Mat4) (*Mesh, error) {
	tris := make([]Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		tt, err := t.ApplyMatrix(mat)
		if err != nil {
			return nil, fmt.Errorf("mesh %q triangle %d: %w", m.Name, i, err)
		}
		tris[i] = tt
	}
	return NewMesh(m.Name, tris...), nil
}

// Fit returns a copy of the mesh centered on the origin and uniformly
// scaled so its largest dimension equals size. Flat or empty meshes are
// only recentered.
func (m *Mesh) Fit(size float64) *Mesh {
	center := m.Center()
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)

	scale := 1.0
	if maxDim > 0 {
		scale = size / maxDim
	}

	tris := make([]Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = t.Translate(center.Negate()).Scale(scale, scale, scale)
	}
	return NewMesh(m.Name, tris...)
}
