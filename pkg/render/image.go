package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ImageRenderer draws into any draw.Image with the x/image vector
// rasterizer, giving smooth polygon edges for exported frames.
type ImageRenderer struct {
	dst       draw.Image
	ras       *vector.Rasterizer
	LineWidth float64 // Outline width in pixels
}

// NewImageRenderer creates a renderer that draws onto dst.
func NewImageRenderer(dst draw.Image) *ImageRenderer {
	b := dst.Bounds()
	return &ImageRenderer{
		dst:       dst,
		ras:       vector.NewRasterizer(b.Dx(), b.Dy()),
		LineWidth: 1,
	}
}

// Clear fills the whole image with c.
func (r *ImageRenderer) Clear(c Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillTriangle implements TriangleFiller.
func (r *ImageRenderer) FillTriangle(a, b, c Point2D, col Color) {
	r.fill(col, a, b, c)
}

// PlotLine implements Renderer. The line is drawn as a thin quad.
func (r *ImageRenderer) PlotLine(a, b Point2D, col Color) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	half := r.LineWidth / 2
	n := Point2D{X: -d.Y / l * half, Y: d.X / l * half}
	r.fill(col, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func (r *ImageRenderer) fill(col Color, pts ...Point2D) {
	for _, p := range pts {
		if !finite(p) || offscreen(p) {
			return
		}
	}

	bounds := r.dst.Bounds()
	r.ras.Reset(bounds.Dx(), bounds.Dy())
	r.ras.DrawOp = draw.Over
	r.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.ras.LineTo(float32(p.X), float32(p.Y))
	}
	r.ras.ClosePath()
	r.ras.Draw(r.dst, bounds, image.NewUniform(col), image.Point{})
}
