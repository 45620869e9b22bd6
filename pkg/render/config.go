package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taigrr/facet/pkg/math3d"
)

// ErrInvalidConfig is returned for camera settings outside their valid range.
var ErrInvalidConfig = errors.New("render: invalid config")

// Mode controls how prepared triangles are drawn.
type Mode int

const (
	ModeFilled    Mode = iota // Flat shaded fill, back faces culled
	ModeWireframe             // Outlines, back faces culled
	ModeXRay                  // Outlines of every triangle, no culling
)

func (m Mode) String() string {
	switch m {
	case ModeFilled:
		return "filled"
	case ModeWireframe:
		return "wireframe"
	case ModeXRay:
		return "xray"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filled", "fill", "":
		return ModeFilled, nil
	case "wireframe", "wire":
		return ModeWireframe, nil
	case "xray", "x-ray":
		return ModeXRay, nil
	}
	return 0, fmt.Errorf("mode %q: %w", s, ErrInvalidConfig)
}

// Viewport maps projected coordinates to pixels:
// x = Width/2 + X*Scale, y = Height/2 - Y*Scale.
type Viewport struct {
	Width  int
	Height int
	Scale  float64
}

// ToPixel converts a projected point to pixel space.
func (v Viewport) ToPixel(p math3d.Vec3) Point2D {
	return Point2D{
		X: float64(v.Width)/2 + p.X*v.Scale,
		Y: float64(v.Height)/2 - p.Y*v.Scale,
	}
}

// Contains reports whether p lies inside the viewport.
func (v Viewport) Contains(p Point2D) bool {
	return p.X >= 0 && p.X <= float64(v.Width) && p.Y >= 0 && p.Y <= float64(v.Height)
}

// Config holds everything a Camera needs at construction.
type Config struct {
	// Projection parameters
	FOV    float64 // Field of view in degrees
	Aspect float64 // Horizontal squash in the projection; 1 with a uniform Viewport.Scale
	Near   float64 // Near clipping distance
	Far    float64 // Far clipping distance

	Viewport Viewport

	Location       math3d.Vec3 // Viewer location, used for culling
	LightDirection math3d.Vec3 // Normalized by the camera
	Offset         math3d.Vec3 // Scene translation applied after rotation

	Mode      Mode
	BaseColor Color   // Fill color before shading
	WireColor Color   // Outline color in wireframe modes
	Ambient   float64 // Minimum light level in [0, 1]
	DepthSort bool    // Submit far triangles first (painter's algorithm)
	Workers   int     // Parallel per-triangle workers; <= 1 runs inline
}

// DefaultConfig returns the standard perspective setup.
func DefaultConfig() Config {
	return Config{
		FOV:    100,
		Aspect: 1,
		Near:   0.1,
		Far:    1000,
		Viewport: Viewport{
			Width:  800,
			Height: 800,
			Scale:  600,
		},
		Location:       math3d.Zero3(),
		LightDirection: math3d.V3(0, 0.5, -1),
		Offset:         math3d.V3(0, 0, 4),
		Mode:           ModeFilled,
		BaseColor:      ColorWhite,
		WireColor:      ColorWhite,
		Workers:        1,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := math3d.Projection(c.FOV, c.Aspect, c.Near, c.Far); err != nil {
		return err
	}
	if _, err := c.LightDirection.Normalize(); err != nil {
		return fmt.Errorf("light direction: %w", err)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport %dx%d: %w", c.Viewport.Width, c.Viewport.Height, ErrInvalidConfig)
	}
	if c.Viewport.Scale <= 0 {
		return fmt.Errorf("viewport scale %g: %w", c.Viewport.Scale, ErrInvalidConfig)
	}
	if c.Mode < ModeFilled || c.Mode > ModeXRay {
		return fmt.Errorf("mode %d: %w", int(c.Mode), ErrInvalidConfig)
	}
	if c.Ambient < 0 || c.Ambient > 1 {
		return fmt.Errorf("ambient %g: %w", c.Ambient, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	return nil
}
