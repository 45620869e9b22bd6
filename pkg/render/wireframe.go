package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// drawOutline draws the three edges of a prepared triangle.
func drawOutline(r Renderer, t ScreenTriangle) {
	r.PlotLine(t.P[0], t.P[1], t.Color)
	r.PlotLine(t.P[1], t.P[2], t.Color)
	r.PlotLine(t.P[2], t.P[0], t.Color)
}

// ProjectPoint maps a scene point (before the scene offset) through the
// same translate, project and viewport steps as a frame.
// ok is false for points on or behind the camera plane.
func (c *Camera) ProjectPoint(p math3d.Vec3, rot Rotation) (Point2D, bool) {
	world, _ := rot.Matrix().Apply(p)
	view := world.Add(c.cfg.Offset).Sub(c.cfg.Location)
	if behindCamera(view) {
		return Point2D{}, false
	}
	projected, ok := c.ProjectionMatrix().Apply(view)
	if !ok {
		return Point2D{}, false
	}
	return c.cfg.Viewport.ToPixel(projected), true
}

// DrawLine3D draws a scene-space line if both endpoints are in front of
// the camera.
func (c *Camera) DrawLine3D(r Renderer, a, b math3d.Vec3, rot Rotation, color Color) {
	pa, okA := c.ProjectPoint(a, rot)
	pb, okB := c.ProjectPoint(b, rot)
	if !okA || !okB {
		return
	}
	r.PlotLine(pa, pb, color)
}

// DrawAxes draws the model-space coordinate axes.
func (c *Camera) DrawAxes(r Renderer, length float64, rot Rotation) {
	origin := math3d.Zero3()
	c.DrawLine3D(r, origin, math3d.V3(length, 0, 0), rot, ColorRed)   // X axis
	c.DrawLine3D(r, origin, math3d.V3(0, length, 0), rot, ColorGreen) // Y axis
	c.DrawLine3D(r, origin, math3d.V3(0, 0, length), rot, ColorBlue)  // Z axis
}
