// Package window draws facet frames onto an ebiten image.
package window

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/taigrr/facet/pkg/render"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// white returns a 1x1 opaque white source for solid-color triangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// Screen adapts an ebiten image to render.Renderer and
// render.TriangleFiller.
type Screen struct {
	Target    *ebiten.Image
	LineWidth float32
	AntiAlias bool // Off by default; frames are drawn with hard edges

	vertices [3]ebiten.Vertex
	indices  [3]uint16
}

// NewScreen wraps target.
func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{
		Target:    target,
		LineWidth: 1,
		indices:   [3]uint16{0, 1, 2},
	}
}

// PlotLine implements render.Renderer.
func (s *Screen) PlotLine(a, b render.Point2D, c render.Color) {
	vector.StrokeLine(s.Target,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		s.LineWidth, c, s.AntiAlias)
}

// FillTriangle implements render.TriangleFiller.
func (s *Screen) FillTriangle(a, b, c render.Point2D, col render.Color) {
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(col.A) / 255

	for i, p := range [3]render.Point2D{a, b, c} {
		s.vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: s.AntiAlias}
	s.Target.DrawTriangles(s.vertices[:], s.indices[:], white(), op)
}

var (
	_ render.Renderer       = (*Screen)(nil)
	_ render.TriangleFiller = (*Screen)(nil)
)
