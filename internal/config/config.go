package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

// Config holds the scene and camera settings a facet command runs with.
type Config struct {
	// Scene
	Mesh   string    `json:"mesh"`
	Offset []float64 `json:"offset"`
	Fit    float64   `json:"fit"`

	// Projection
	FOV    float64 `json:"fov"`
	Aspect float64 `json:"aspect"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`

	// Viewport
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`

	// Shading
	Location  []float64 `json:"location"`
	Light     []float64 `json:"light"`
	Mode      string    `json:"mode"`
	Color     []int     `json:"color"`
	WireColor []int     `json:"wire_color"`
	Ambient   float64   `json:"ambient"`
	DepthSort bool      `json:"depth_sort"`

	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh      string
	Mode      string
	Width     int
	Height    int
	FOV       float64
	Workers   int
	DepthSort bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.DepthSort {
		c.DepthSort = true
	}

	def := render.DefaultConfig()
	if c.Mesh == "" {
		c.Mesh = "cube"
	}
	if c.FOV <= 0 {
		c.FOV = def.FOV
	}
	if c.Near <= 0 {
		c.Near = def.Near
	}
	if c.Far <= 0 {
		c.Far = def.Far
	}
	if c.Width <= 0 {
		c.Width = def.Viewport.Width
	}
	if c.Height <= 0 {
		c.Height = def.Viewport.Height
	}
	// One Scale serves both axes, so the projection must not squash x.
	if c.Aspect <= 0 {
		c.Aspect = def.Aspect
	}
	if c.Scale <= 0 {
		c.Scale = def.Viewport.Scale * float64(c.Height) / float64(def.Viewport.Height)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Render converts the resolved settings into a validated render.Config.
func (c Config) Render() (render.Config, error) {
	rc := render.DefaultConfig()
	rc.FOV, rc.Aspect, rc.Near, rc.Far = c.FOV, c.Aspect, c.Near, c.Far
	rc.Viewport = render.Viewport{Width: c.Width, Height: c.Height, Scale: c.Scale}
	rc.Ambient = c.Ambient
	rc.DepthSort = c.DepthSort
	rc.Workers = c.Workers

	var err error
	if rc.Mode, err = render.ParseMode(c.Mode); err != nil {
		return render.Config{}, fmt.Errorf("config: %w", err)
	}
	if rc.Offset, err = vec(c.Offset, rc.Offset); err != nil {
		return render.Config{}, fmt.Errorf("config: offset: %w", err)
	}
	if rc.Location, err = vec(c.Location, rc.Location); err != nil {
		return render.Config{}, fmt.Errorf("config: location: %w", err)
	}
	if rc.LightDirection, err = vec(c.Light, rc.LightDirection); err != nil {
		return render.Config{}, fmt.Errorf("config: light: %w", err)
	}
	if rc.BaseColor, err = rgb(c.Color, rc.BaseColor); err != nil {
		return render.Config{}, fmt.Errorf("config: color: %w", err)
	}
	if rc.WireColor, err = rgb(c.WireColor, rc.WireColor); err != nil {
		return render.Config{}, fmt.Errorf("config: wire_color: %w", err)
	}

	if err := rc.Validate(); err != nil {
		return render.Config{}, fmt.Errorf("config: %w", err)
	}
	return rc, nil
}

// LoadMesh returns the configured built-in mesh, fitted to Fit when set.
func (c Config) LoadMesh() (*models.Mesh, error) {
	mesh, ok := models.Primitive(c.Mesh)
	if !ok {
		return nil, fmt.Errorf("config: unknown mesh %q (have %v)", c.Mesh, models.PrimitiveNames())
	}
	if c.Fit > 0 {
		mesh = mesh.Fit(c.Fit)
	}
	return mesh, nil
}

func vec(v []float64, fallback math3d.Vec3) (math3d.Vec3, error) {
	if v == nil {
		return fallback, nil
	}
	return math3d.V3FromSlice(v)
}

func rgb(v []int, fallback render.Color) (render.Color, error) {
	if v == nil {
		return fallback, nil
	}
	if len(v) != 3 {
		return render.Color{}, fmt.Errorf("want 3 channels, got %d: %w", len(v), render.ErrInvalidConfig)
	}
	for _, c := range v {
		if c < 0 || c > 255 {
			return render.Color{}, fmt.Errorf("channel %d out of range: %w", c, render.ErrInvalidConfig)
		}
	}
	return render.RGB(uint8(v[0]), uint8(v[1]), uint8(v[2])), nil
}
