package render

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

var (
	// ErrNilMesh is returned when a frame is requested without a mesh.
	ErrNilMesh = errors.New("render: nil mesh")

	// ErrNilRenderer is returned when a frame is requested without a renderer.
	ErrNilRenderer = errors.New("render: nil renderer")
)

// Rotation is a model rotation in radians. It is always composed as
// Rx, then Ry, then Rz.
type Rotation struct {
	X, Y, Z float64
}

// Matrix returns RotateX(X)·RotateY(Y)·RotateZ(Z).
func (r Rotation) Matrix() math3d.Mat4 {
	return math3d.RotateXYZ(r.X, r.Y, r.Z)
}

// ScreenTriangle is a prepared triangle ready for submission.
type ScreenTriangle struct {
	P     [3]Point2D
	Depth float64 // Mean view-space z; larger is farther
	Shade float64 // Light factor applied to the base color
	Color Color
	Index int // Position in the source mesh
}

// FrameStats counts what happened to each triangle of a frame.
type FrameStats struct {
	Triangles     int // Triangles in the mesh
	Drawn         int // Submitted to the renderer
	Culled        int // Back faces
	Degenerate    int // Zero-area triangles
	Unprojectable int // Vertices on or behind the camera plane (w <= 0)
}

type outcome uint8

const (
	outcomeDrawn outcome = iota
	outcomeCulled
	outcomeDegenerate
	outcomeUnprojectable
)

// frame is the camera state captured at the start of a frame.
type frame struct {
	rotation   math3d.Mat4
	projection math3d.Mat4
	offset     math3d.Vec3
	location   math3d.Vec3
	light      math3d.Vec3
	viewport   Viewport
	mode       Mode
	base       Color
	wire       Color
	ambient    float64
}

func (c *Camera) newFrame(rot Rotation) *frame {
	return &frame{
		rotation:   rot.Matrix(),
		projection: c.ProjectionMatrix(),
		offset:     c.cfg.Offset,
		location:   c.cfg.Location,
		light:      c.lightDir,
		viewport:   c.cfg.Viewport,
		mode:       c.cfg.Mode,
		base:       c.cfg.BaseColor,
		wire:       c.cfg.WireColor,
		ambient:    c.cfg.Ambient,
	}
}

// prepare runs rotate, translate, cull, shade, project and viewport
// scaling for a single triangle.
func (f *frame) prepare(t models.Triangle) (ScreenTriangle, outcome) {
	rotated, err := t.ApplyMatrix(f.rotation)
	if err != nil {
		return ScreenTriangle{}, outcomeUnprojectable
	}
	world := rotated.Translate(f.offset)

	n, err := world.Normal()
	if err != nil {
		return ScreenTriangle{}, outcomeDegenerate
	}
	if f.mode != ModeXRay && !models.FacesCamera(n, world.P[0], f.location) {
		return ScreenTriangle{}, outcomeCulled
	}

	st := ScreenTriangle{Color: f.wire}
	if f.mode == ModeFilled {
		st.Shade = models.Lambert(n, f.light)
		if f.ambient > 0 {
			st.Shade = f.ambient + (1-f.ambient)*st.Shade
		}
		st.Color = ShadeColor(f.base, st.Shade)
	}

	// The projection looks down +z from the origin; w is the view z.
	view := world.Translate(f.location.Negate())
	for _, p := range view.P {
		if behindCamera(p) {
			return ScreenTriangle{}, outcomeUnprojectable
		}
	}
	projected, err := view.ApplyMatrix(f.projection)
	if err != nil {
		return ScreenTriangle{}, outcomeUnprojectable
	}

	for i, p := range projected.P {
		st.P[i] = f.viewport.ToPixel(p)
	}
	st.Depth = view.Centroid().Z
	return st, outcomeDrawn
}

// Prepare transforms, culls, shades and projects every triangle of mesh
// without drawing. Triangles that are culled, degenerate or unprojectable
// are counted and skipped. The result is in mesh order, or far to near
// when depth sorting is enabled. A nil mesh yields an empty frame.
func (c *Camera) Prepare(mesh *models.Mesh, rot Rotation) ([]ScreenTriangle, FrameStats) {
	if mesh == nil {
		return nil, FrameStats{}
	}
	f := c.newFrame(rot)
	n := mesh.TriangleCount()

	prepared := make([]ScreenTriangle, n)
	outcomes := make([]outcome, n)

	workers := c.cfg.Workers
	if workers <= 1 || n < 2*workers {
		for i, t := range mesh.Triangles {
			prepared[i], outcomes[i] = f.prepare(t)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		chunk := (n + workers - 1) / workers
		for start := 0; start < n; start += chunk {
			end := min(start+chunk, n)
			g.Go(func() error {
				for i := start; i < end; i++ {
					prepared[i], outcomes[i] = f.prepare(mesh.Triangles[i])
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	stats := FrameStats{Triangles: n}
	out := make([]ScreenTriangle, 0, n)
	for i, o := range outcomes {
		switch o {
		case outcomeDrawn:
			st := prepared[i]
			st.Index = i
			out = append(out, st)
			stats.Drawn++
		case outcomeCulled:
			stats.Culled++
		case outcomeDegenerate:
			stats.Degenerate++
			c.debug("skipping degenerate triangle", "mesh", mesh.Name, "index", i)
		case outcomeUnprojectable:
			stats.Unprojectable++
			c.debug("skipping unprojectable triangle", "mesh", mesh.Name, "index", i)
		}
	}

	if c.cfg.DepthSort {
		slices.SortStableFunc(out, func(a, b ScreenTriangle) int {
			return cmp.Compare(b.Depth, a.Depth)
		})
	}
	return out, stats
}

// RenderFrame prepares mesh and submits the visible triangles to r.
func (c *Camera) RenderFrame(mesh *models.Mesh, rot Rotation, r Renderer) (FrameStats, error) {
	if mesh == nil {
		return FrameStats{}, fmt.Errorf("render frame: %w", ErrNilMesh)
	}
	if r == nil {
		return FrameStats{}, fmt.Errorf("render frame: %w", ErrNilRenderer)
	}

	tris, stats := c.Prepare(mesh, rot)
	Submit(r, tris, c.cfg.Mode)
	return stats, nil
}

// Submit draws prepared triangles in order. Filled mode uses FillTriangle
// when r supports it and outlines otherwise.
func Submit(r Renderer, tris []ScreenTriangle, mode Mode) {
	filler, canFill := r.(TriangleFiller)
	for _, t := range tris {
		if mode == ModeFilled && canFill {
			filler.FillTriangle(t.P[0], t.P[1], t.P[2], t.Color)
			continue
		}
		drawOutline(r, t)
	}
}

// behindCamera reports whether a view-space point is on or behind the
// camera plane, where the perspective divide is undefined or mirrors it.
func behindCamera(p math3d.Vec3) bool {
	return p.Z <= math3d.Epsilon
}

func (c *Camera) debug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}
