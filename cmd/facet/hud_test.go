package main

import (
	"strings"
	"testing"

	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

func TestHUDStatus(t *testing.T) {
	hud := NewHUD(models.Cube())
	hud.Update(render.FrameStats{Triangles: 12, Drawn: 2, Culled: 9, Degenerate: 1})

	got := hud.Status(render.ModeWireframe, true)
	for _, want := range []string{"mode: wireframe", "[✓] depth sort", "drawn 2", "culled 9", "skipped 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
}

func TestNextMode(t *testing.T) {
	m := render.ModeFilled
	want := []render.Mode{render.ModeWireframe, render.ModeXRay, render.ModeFilled}
	for i, w := range want {
		m = nextMode(m)
		if m != w {
			t.Errorf("step %d: got %v, want %v", i, m, w)
		}
	}
}

func TestParseRGB(t *testing.T) {
	c, err := parseRGB("30,40,50")
	if err != nil {
		t.Fatal(err)
	}
	if c != render.RGB(30, 40, 50) {
		t.Errorf("got %v", c)
	}
	if _, err := parseRGB("blue"); err == nil {
		t.Error("expected error")
	}
}
