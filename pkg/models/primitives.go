package models

import "github.com/taigrr/facet/pkg/math3d"

func tri(a, b, c [3]float64) Triangle {
	return NewTriangle(
		math3d.V3(a[0], a[1], a[2]),
		math3d.V3(b[0], b[1], b[2]),
		math3d.V3(c[0], c[1], c[2]),
	)
}

// Cube returns the unit cube spanning [0,1]³ as 12 outward-wound triangles.
func Cube() *Mesh {
	return NewMesh("cube",
		// south (z=0)
		tri([3]float64{0, 0, 0}, [3]float64{0, 1, 0}, [3]float64{1, 1, 0}),
		tri([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 0, 0}),

		// east (x=1)
		tri([3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 1}),
		tri([3]float64{1, 0, 0}, [3]float64{1, 1, 1}, [3]float64{1, 0, 1}),

		// north (z=1)
		tri([3]float64{1, 0, 1}, [3]float64{1, 1, 1}, [3]float64{0, 1, 1}),
		tri([3]float64{1, 0, 1}, [3]float64{0, 1, 1}, [3]float64{0, 0, 1}),

		// west (x=0)
		tri([3]float64{0, 0, 1}, [3]float64{0, 1, 1}, [3]float64{0, 1, 0}),
		tri([3]float64{0, 0, 1}, [3]float64{0, 1, 0}, [3]float64{0, 0, 0}),

		// top (y=1)
		tri([3]float64{0, 1, 0}, [3]float64{0, 1, 1}, [3]float64{1, 1, 1}),
		tri([3]float64{0, 1, 0}, [3]float64{1, 1, 1}, [3]float64{1, 1, 0}),

		// bottom (y=0)
		tri([3]float64{1, 0, 1}, [3]float64{0, 0, 1}, [3]float64{0, 0, 0}),
		tri([3]float64{1, 0, 1}, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}),
	)
}

// Pyramid returns a square pyramid with its base on y=0 spanning [0,1]
// in x and z and its apex at (0.5, 1, 0.5).
func Pyramid() *Mesh {
	apex := [3]float64{0.5, 1, 0.5}
	return NewMesh("pyramid",
		// base
		tri([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{1, 0, 1}),
		tri([3]float64{0, 0, 0}, [3]float64{1, 0, 1}, [3]float64{0, 0, 1}),

		// sides
		tri([3]float64{0, 0, 0}, apex, [3]float64{1, 0, 0}),
		tri([3]float64{1, 0, 0}, apex, [3]float64{1, 0, 1}),
		tri([3]float64{1, 0, 1}, apex, [3]float64{0, 0, 1}),
		tri([3]float64{0, 0, 1}, apex, [3]float64{0, 0, 0}),
	)
}

// Octahedron returns the unit octahedron with vertices on the axes.
func Octahedron() *Mesh {
	tris := make([]Triangle, 0, 8)
	for _, sx := range []float64{1, -1} {
		for _, sy := range []float64{1, -1} {
			for _, sz := range []float64{1, -1} {
				x := math3d.V3(sx, 0, 0)
				y := math3d.V3(0, sy, 0)
				z := math3d.V3(0, 0, sz)
				// Mirroring an odd number of axes flips the winding.
				if sx*sy*sz > 0 {
					tris = append(tris, NewTriangle(x, y, z))
				} else {
					tris = append(tris, NewTriangle(x, z, y))
				}
			}
		}
	}
	return NewMesh("octahedron", tris...)
}

// Primitive returns a built-in mesh by name.
func Primitive(name string) (*Mesh, bool) {
	switch name {
	case "cube":
		return Cube(), true
	case "pyramid":
		return Pyramid(), true
	case "octahedron":
		return Octahedron(), true
	}
	return nil, false
}

// PrimitiveNames lists the names accepted by Primitive.
func PrimitiveNames() []string {
	return []string{"cube", "pyramid", "octahedron"}
}
