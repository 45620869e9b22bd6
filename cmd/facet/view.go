package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/facet/pkg/render"
)

const viewHelp = `Controls:
  W/S/A/D     - Pitch and yaw
  Q/E         - Roll left/right
  Space       - Random spin
  P           - Toggle automatic spin
  R           - Reset rotation
  X           - Cycle mode (filled, wireframe, xray)
  Z           - Toggle depth sorting
  G           - Toggle axes
  ?           - Toggle HUD overlay
  Esc         - Quit`

type viewOptions struct {
	fps  int
	bg   string
	spin bool
	axes bool
}

func newViewCmd(scene *sceneFlags) *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Interactive terminal viewer",
		Long:  "Render a mesh in the terminal with half-block pixels.\n\n" + viewHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd.Context(), scene, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.fps, "fps", 60, "Target FPS")
	f.StringVar(&opts.bg, "bg", "30,30,40", "Background color (R,G,B)")
	f.BoolVar(&opts.spin, "spin", true, "Spin the mesh continuously")
	f.BoolVar(&opts.axes, "axes", false, "Draw the model axes")
	return cmd
}

// viewState holds UI toggles that are not part of the camera.
type viewState struct {
	showHUD bool
	axes    bool
}

// nextMode cycles filled, wireframe, xray.
func nextMode(m render.Mode) render.Mode {
	return (m + 1) % (render.ModeXRay + 1)
}

func runView(ctx context.Context, scene *sceneFlags, opts viewOptions) error {
	if opts.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", opts.fps)
	}
	bg, err := parseRGB(opts.bg)
	if err != nil {
		return err
	}

	logger, closeLog, err := scene.logger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	fbWidth, fbHeight := render.FramebufferSize(width, height)
	cfg, mesh, err := scene.load(fbWidth, fbHeight)
	if err != nil {
		return err
	}
	camera, err := render.NewCamera(cfg)
	if err != nil {
		return err
	}
	camera.SetLogger(logger)
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	logger.Info("viewing", "mesh", mesh.Name, "triangles", mesh.TriangleCount(), "mode", cfg.Mode, "size", fmt.Sprintf("%dx%d", fbWidth, fbHeight))

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rotation := NewRotationState(opts.fps, opts.spin)
	state := &viewState{axes: opts.axes}
	hud := NewHUD(mesh)

	// Input is applied on the render goroutine.
	events := make(chan uv.Event, 16)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 3.0

	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			fbWidth, fbHeight = render.FramebufferSize(width, height)
			fb = render.NewFramebuffer(fbWidth, fbHeight)
			if err := resizeCamera(camera, fbWidth, fbHeight); err != nil {
				logger.Warn("resize", "err", err)
			}

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
				cancel()
			case ev.MatchString("w", "up"):
				inputTorque.pitch = -torqueStrength
			case ev.MatchString("s", "down"):
				inputTorque.pitch = torqueStrength
			case ev.MatchString("a", "left"):
				inputTorque.yaw = -torqueStrength
			case ev.MatchString("d", "right"):
				inputTorque.yaw = torqueStrength
			case ev.MatchString("q"):
				inputTorque.roll = -torqueStrength
			case ev.MatchString("e"):
				inputTorque.roll = torqueStrength
			case ev.MatchString("space"):
				rotation.ApplyImpulse(
					(rand.Float64()-0.5)*1.5,
					(rand.Float64()-0.5)*1.5,
					(rand.Float64()-0.5)*1.5,
				)
			case ev.MatchString("p"):
				rotation.Spin = !rotation.Spin
			case ev.MatchString("r"):
				rotation.Reset()
			case ev.MatchString("x"):
				camera.SetMode(nextMode(camera.Mode()))
				logger.Debug("mode", "mode", camera.Mode())
			case ev.MatchString("z"):
				cfg := camera.Config()
				camera.SetDepthSort(!cfg.DepthSort)
			case ev.MatchString("g"):
				state.axes = !state.axes
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				state.showHUD = !state.showHUD
			}

		case uv.KeyReleaseEvent:
			switch {
			case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
				inputTorque.pitch = 0
			case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
				inputTorque.yaw = 0
			case ev.MatchString("q"), ev.MatchString("e"):
				inputTorque.roll = 0
			}
		}
	}

	targetDuration := time.Second / time.Duration(opts.fps)
	start := time.Now()
	lastFrame := start

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

	drain:
		for {
			select {
			case ev := <-events:
				handle(ev)
			default:
				break drain
			}
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		// Apply input torque and decay it (key release events unreliable)
		rotation.ApplyImpulse(inputTorque.pitch*dt, inputTorque.yaw*dt, inputTorque.roll*dt)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9
		rotation.Update()

		rot := rotation.Rotation(now.Sub(start).Seconds())

		fb.Clear(bg)
		stats, err := camera.RenderFrame(mesh, rot, fb)
		if err != nil {
			cleanup()
			return err
		}
		if state.axes {
			camera.DrawAxes(fb, 1.5, rot)
		}

		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		hud.Update(stats)
		hud.Render(width, height, camera, state)

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// resizeCamera rescales the viewport after a terminal resize. The scale
// follows the height and is shared by both axes, so pixels stay square
// without touching the projection aspect.
func resizeCamera(camera *render.Camera, width, height int) error {
	def := render.DefaultConfig().Viewport
	scale := def.Scale * float64(height) / float64(def.Height)
	return camera.SetViewport(render.Viewport{Width: width, Height: height, Scale: scale})
}

func parseRGB(s string) (render.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("color %q: want R,G,B: %w", s, err)
	}
	return render.RGB(r, g, b), nil
}
