package render

import (
	"image/color"
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// Point2D is a pixel-space position: x grows right, y grows down.
type Point2D = math3d.Vec2

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Renderer is the drawing capability the pipeline submits to. Coordinates
// are already in pixel space.
type Renderer interface {
	PlotLine(a, b Point2D, c Color)
}

// TriangleFiller is implemented by renderers that can fill a triangle.
// Filled frames fall back to outlines on renderers without it.
type TriangleFiller interface {
	FillTriangle(a, b, c Point2D, col Color)
}

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) Color {
	return color.RGBA{r, g, b, 255}
}

// ShadeColor scales the RGB channels of base by factor. Each channel is
// truncated and clamped to [0, 255]; alpha is kept.
func ShadeColor(base Color, factor float64) Color {
	return Color{
		R: shadeChannel(base.R, factor),
		G: shadeChannel(base.G, factor),
		B: shadeChannel(base.B, factor),
		A: base.A,
	}
}

func shadeChannel(c uint8, factor float64) uint8 {
	v := float64(c) * factor
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
