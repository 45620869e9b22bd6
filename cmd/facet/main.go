// facet renders flat-shaded triangle meshes in the terminal or to image
// files.
//
// Usage:
//
//	facet view [--mesh cube] [--mode filled|wireframe|xray]
//	facet snapshot --out cube.png [--rx 0.5 --ry 0.3]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/facet/internal/config"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"

	// .tga output; its decoder claims every input in image.Decode, which
	// this command never calls.
	_ "github.com/taigrr/facet/pkg/render/tgaformat"
)

var version = "dev"

// sceneFlags are shared by every subcommand.
type sceneFlags struct {
	configPath string
	logLevel   string
	logFile    string
	flags      config.Flags
}

func (s *sceneFlags) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&s.configPath, "config", "c", "", "JSON config file")
	f.StringVar(&s.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&s.logFile, "log-file", "", "Write logs to this file instead of stderr")
	f.StringVarP(&s.flags.Mesh, "mesh", "m", "", fmt.Sprintf("Built-in mesh %v", models.PrimitiveNames()))
	f.StringVar(&s.flags.Mode, "mode", "", "Render mode (filled, wireframe, xray)")
	f.Float64Var(&s.flags.FOV, "fov", 0, "Field of view in degrees")
	f.IntVarP(&s.flags.Workers, "workers", "j", 0, "Parallel triangle workers (default: CPU count)")
	f.BoolVar(&s.flags.DepthSort, "depth-sort", false, "Draw far triangles first")
}

// load resolves the config file and flags into a camera config and mesh.
func (s *sceneFlags) load(width, height int) (render.Config, *models.Mesh, error) {
	var cfg config.Config
	if s.configPath != "" {
		var err error
		if cfg, err = config.Load(s.configPath); err != nil {
			return render.Config{}, nil, err
		}
	}

	flags := s.flags
	if width > 0 {
		flags.Width, flags.Height = width, height
	}
	cfg.Resolve(flags)

	rc, err := cfg.Render()
	if err != nil {
		return render.Config{}, nil, err
	}
	mesh, err := cfg.LoadMesh()
	if err != nil {
		return render.Config{}, nil, err
	}
	return rc, mesh, nil
}

// logger builds the logger for a run. closeFn releases the log file.
func (s *sceneFlags) logger(quiet bool) (logger *log.Logger, closeFn func() error, err error) {
	level, err := log.ParseLevel(s.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn = func() error { return nil }
	switch {
	case s.logFile != "":
		f, err := os.Create(s.logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w, closeFn = f, f.Close
	case quiet:
		// The terminal viewer owns the screen.
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "facet",
	})
	return logger, closeFn, nil
}

func newRootCmd() *cobra.Command {
	var scene sceneFlags

	root := &cobra.Command{
		Use:   "facet",
		Short: "Flat-shaded 3D meshes in your terminal",
		Long: "facet rotates, culls, shades and projects triangle meshes with a small\n" +
			"software pipeline and draws them as terminal half blocks or image files.",
		SilenceUsage: true,
	}
	scene.register(root)

	root.AddCommand(newViewCmd(&scene), newSnapshotCmd(&scene))
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
