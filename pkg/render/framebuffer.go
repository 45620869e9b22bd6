// Package render turns meshes into 2D draw calls and provides the
// backends that receive them.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// Framebuffer is a 2D array of pixels. It implements Renderer and
// TriangleFiller and can be drawn to the terminal or saved as an image.
type Framebuffer struct {
	Width  int          // Width in pixels
	Height int          // Height in pixels (2x terminal rows for half-block output)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PlotLine implements Renderer.
func (fb *Framebuffer) PlotLine(a, b Point2D, c Color) {
	if !finite(a) || !finite(b) || offscreen(a) || offscreen(b) {
		return
	}
	fb.DrawLine(round(a.X), round(a.Y), round(b.X), round(b.Y), c)
}

// FillTriangle implements TriangleFiller. Pixels whose centers lie inside
// the triangle (either winding) are set.
func (fb *Framebuffer) FillTriangle(a, b, c Point2D, col Color) {
	if !finite(a) || !finite(b) || !finite(c) {
		return
	}
	area := b.Sub(a).Cross(c.Sub(a))
	if math.Abs(area) < 1e-12 {
		return
	}

	// Find bounding box
	minX := int(math.Max(0, math.Floor(min(a.X, b.X, c.X))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max(a.X, b.X, c.X))))
	minY := int(math.Max(0, math.Floor(min(a.Y, b.Y, c.Y))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max(a.Y, b.Y, c.Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			bc := barycentric(a, b, c, area, math3d.V2(float64(x)+0.5, float64(y)+0.5))
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			fb.Pixels[y*fb.Width+x] = col
		}
	}
}

// barycentric returns the barycentric coordinates of p in triangle abc,
// given its signed doubled area.
func barycentric(a, b, c Point2D, area float64, p Point2D) math3d.Vec3 {
	w0 := b.Sub(p).Cross(c.Sub(p)) / area
	w1 := c.Sub(p).Cross(a.Sub(p)) / area
	return math3d.V3(w0, w1, 1-w0-w1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func round(v float64) int {
	return int(math.Round(v))
}

// maxCoord bounds line endpoints; Bresenham walks every pixel between them.
const maxCoord = 1 << 16

func offscreen(p Point2D) bool {
	return math.Abs(p.X) > maxCoord || math.Abs(p.Y) > maxCoord
}

func finite(p Point2D) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}
