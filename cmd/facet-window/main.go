// facet-window shows a facet mesh in a desktop window.
//
// Controls:
//
//	Mouse drag  - Rotate
//	X           - Cycle mode (filled, wireframe, xray)
//	Z           - Toggle depth sorting
//	P           - Toggle automatic spin
//	Esc         - Quit
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/taigrr/facet/internal/config"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/window"
)

var errQuit = errors.New("quit")

// Game implements ebiten.Game.
type Game struct {
	camera *render.Camera
	mesh   *models.Mesh
	width  int
	height int

	start      time.Time
	spin       bool
	drag       render.Rotation
	isDragging bool
	lastX      int
	lastY      int
	stats      render.FrameStats
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.camera.SetMode((g.camera.Mode() + 1) % (render.ModeXRay + 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.camera.SetDepthSort(!g.camera.Config().DepthSort)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.spin = !g.spin
	}

	// Mouse rotation
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.isDragging {
		x, y := ebiten.CursorPosition()
		g.drag.Y += float64(x-g.lastX) / 200
		g.drag.X += float64(y-g.lastY) / 200
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}
	return nil
}

func (g *Game) rotation() render.Rotation {
	rot := g.drag
	if g.spin {
		t := time.Since(g.start).Seconds()
		rot.X += t
		rot.Z += t / 2
	}
	return rot
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	stats, err := g.camera.RenderFrame(g.mesh, g.rotation(), window.NewScreen(screen))
	if err == nil {
		g.stats = stats
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  mode: %s  drawn %d  culled %d",
		ebiten.ActualFPS(), g.camera.Mode(), g.stats.Drawn, g.stats.Culled))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		spin       bool
		flags      config.Flags
	)

	cmd := &cobra.Command{
		Use:          "facet-window",
		Short:        "Show a flat-shaded mesh in a window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "facet-window"})

			var cfg config.Config
			if configPath != "" {
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			cfg.Resolve(flags)
			rc, err := cfg.Render()
			if err != nil {
				return err
			}
			mesh, err := cfg.LoadMesh()
			if err != nil {
				return err
			}
			camera, err := render.NewCamera(rc)
			if err != nil {
				return err
			}
			camera.SetLogger(logger)

			game := &Game{
				camera: camera,
				mesh:   mesh,
				width:  rc.Viewport.Width,
				height: rc.Viewport.Height,
				start:  time.Now(),
				spin:   spin,
			}

			ebiten.SetWindowSize(game.width, game.height)
			ebiten.SetWindowTitle("facet: " + mesh.Name)
			logger.Info("opening window", "mesh", mesh.Name, "size", fmt.Sprintf("%dx%d", game.width, game.height))
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "JSON config file")
	f.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.BoolVar(&spin, "spin", true, "Spin the mesh continuously")
	f.StringVarP(&flags.Mesh, "mesh", "m", "", fmt.Sprintf("Built-in mesh %v", models.PrimitiveNames()))
	f.StringVar(&flags.Mode, "mode", "", "Render mode (filled, wireframe, xray)")
	f.IntVar(&flags.Width, "width", 0, "Window width")
	f.IntVar(&flags.Height, "height", 0, "Window height")
	f.Float64Var(&flags.FOV, "fov", 0, "Field of view in degrees")
	f.IntVarP(&flags.Workers, "workers", "j", 0, "Parallel triangle workers (default: CPU count)")
	f.BoolVar(&flags.DepthSort, "depth-sort", false, "Draw far triangles first")
	return cmd
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}
