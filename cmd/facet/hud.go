package main

import (
	"fmt"
	"time"

	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

// HUD renders an overlay with mesh info and frame stats
type HUD struct {
	name      string
	polyCount int
	stats     render.FrameStats
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD(mesh *models.Mesh) *HUD {
	return &HUD{
		name:      mesh.Name,
		polyCount: mesh.TriangleCount(),
		fpsTime:   time.Now(),
	}
}

// Update records the last frame and updates the FPS counter (call once per frame)
func (h *HUD) Update(stats render.FrameStats) {
	h.stats = stats
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Status is the bottom line of the overlay.
func (h *HUD) Status(mode render.Mode, depthSort bool) string {
	sorted := "[ ]"
	if depthSort {
		sorted = "[✓]"
	}
	return fmt.Sprintf("mode: %s  %s depth sort  drawn %d  culled %d  skipped %d",
		mode, sorted, h.stats.Drawn, h.stats.Culled, h.stats.Degenerate+h.stats.Unprojectable)
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, camera *render.Camera, state *viewState) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !state.showHUD {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(h.name)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, h.name, reset)

	fmt.Printf("%s%s%s%s %d polys %s", moveTo(1, max(width-12, 1)), bgBlack, fgCyan, bold, h.polyCount, reset)

	cfg := camera.Config()
	fmt.Printf("%s%s%s %s %s", moveTo(height, 1), bgBlack, fgWhite, h.Status(cfg.Mode, cfg.DepthSort), reset)
}
