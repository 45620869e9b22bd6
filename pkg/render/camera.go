package render

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/taigrr/facet/pkg/math3d"
)

// Camera holds the viewer location, the light and the projection, and
// runs the per-frame pipeline.
type Camera struct {
	cfg Config

	// Normalized light direction
	lightDir math3d.Vec3

	// Cached projection (rebuilt when projection parameters change)
	projMatrix math3d.Mat4
	projDirty  bool

	logger *log.Logger
}

// NewCamera creates a camera from cfg. Invalid settings fail here rather
// than during a frame.
func NewCamera(cfg Config) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new camera: %w", err)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}

	c := &Camera{cfg: cfg, projDirty: true}
	if err := c.SetLightDirection(cfg.LightDirection); err != nil {
		return nil, fmt.Errorf("new camera: %w", err)
	}
	return c, nil
}

// Config returns a copy of the camera settings. LightDirection is the
// normalized value in use.
func (c *Camera) Config() Config {
	cfg := c.cfg
	cfg.LightDirection = c.lightDir
	return cfg
}

// SetLogger sets the logger that receives per-triangle debug messages.
func (c *Camera) SetLogger(l *log.Logger) {
	c.logger = l
}

// Location returns the viewer location.
func (c *Camera) Location() math3d.Vec3 {
	return c.cfg.Location
}

// SetLocation sets the viewer location.
func (c *Camera) SetLocation(pos math3d.Vec3) {
	c.cfg.Location = pos
}

// LightDirection returns the normalized light direction.
func (c *Camera) LightDirection() math3d.Vec3 {
	return c.lightDir
}

// SetLightDirection normalizes and stores dir. A zero vector fails with
// math3d.ErrDegenerateVector and keeps the previous direction.
func (c *Camera) SetLightDirection(dir math3d.Vec3) error {
	n, err := dir.Normalize()
	if err != nil {
		return fmt.Errorf("light direction: %w", err)
	}
	c.lightDir = n
	c.cfg.LightDirection = dir
	return nil
}

// SetProjection changes the projection parameters (fov in degrees).
func (c *Camera) SetProjection(fov, aspect, near, far float64) error {
	if _, err := math3d.Projection(fov, aspect, near, far); err != nil {
		return err
	}
	c.cfg.FOV, c.cfg.Aspect, c.cfg.Near, c.cfg.Far = fov, aspect, near, far
	c.projDirty = true
	return nil
}

// SetViewport changes the pixel mapping, e.g. after a window resize.
func (c *Camera) SetViewport(v Viewport) error {
	if v.Width <= 0 || v.Height <= 0 || v.Scale <= 0 {
		return fmt.Errorf("viewport %dx%d scale %g: %w", v.Width, v.Height, v.Scale, ErrInvalidConfig)
	}
	c.cfg.Viewport = v
	return nil
}

// SetOffset sets the scene translation applied after rotation.
func (c *Camera) SetOffset(v math3d.Vec3) {
	c.cfg.Offset = v
}

// Mode returns the draw mode.
func (c *Camera) Mode() Mode {
	return c.cfg.Mode
}

// SetMode sets the draw mode.
func (c *Camera) SetMode(m Mode) {
	c.cfg.Mode = m
}

// SetDepthSort enables painter's-algorithm submission order.
func (c *Camera) SetDepthSort(on bool) {
	c.cfg.DepthSort = on
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

func (c *Camera) computeProjectionMatrix() {
	// Parameters were validated when they were set.
	c.projMatrix, _ = math3d.Projection(c.cfg.FOV, c.cfg.Aspect, c.cfg.Near, c.cfg.Far)
}
