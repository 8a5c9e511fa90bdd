package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

func TestCanvas_SetGet(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.SubWidth() != 8 || c.SubHeight() != 8 {
		t.Fatalf("expected 8x8 pixels, got %dx%d", c.SubWidth(), c.SubHeight())
	}

	c.Set(3, 5, render.Red)
	if !c.Get(3, 5) {
		t.Error("expected pixel (3, 5) set")
	}
	if c.Get(2, 5) {
		t.Error("expected pixel (2, 5) clear")
	}
	if c.Colors[1][1] != render.Red {
		t.Errorf("expected cell colour red, got %q", c.Colors[1][1])
	}

	c.Unset(3, 5)
	if c.Get(3, 5) {
		t.Error("expected pixel (3, 5) cleared")
	}
	if c.Grid[1][1] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[1][1])
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(-1, 0, render.Red)
	c.Set(0, 100, render.Red)
	c.Set(4, 0, render.Red)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Errorf("expected an empty canvas, got %q", c.String())
	}
}

func TestCanvas_TextWins(t *testing.T) {
	c := NewCanvas(10, 2)
	c.PutText(2, 0, "hi", render.White)
	c.Set(4, 0, render.Red)

	if c.Grid[0][2] != 'h' || c.Grid[0][3] != 'i' {
		t.Errorf("expected text in cells, got %q", string(c.Grid[0]))
	}
	if c.Get(4, 0) {
		t.Error("pixels should not be set over text")
	}

	c.PutText(8, 1, "clip", render.White)
	if string(c.Grid[1][8:]) != "cl" {
		t.Errorf("expected clipped text, got %q", string(c.Grid[1][8:]))
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawLine(0, 0, 9, 0, render.Green)
	for x := 0; x < 10; x++ {
		if !c.Get(x, 0) {
			t.Errorf("expected pixel (%d, 0) set", x)
		}
	}
	if c.Get(0, 1) {
		t.Error("line should stay on its row")
	}
}

func TestCamera_FitCentresBounds(t *testing.T) {
	cam := NewCamera()
	cam.Fit(vec.V(-10, -5, 0), vec.V(10, 5, 0), 100, 100)

	x, y, ok := cam.Project(vec.Zero, 100, 100)
	if !ok || x != 50 || y != 50 {
		t.Errorf("expected origin at (50, 50), got (%d, %d) %t", x, y, ok)
	}
	x, _, ok = cam.Project(vec.V(10, 0, 0), 100, 100)
	if !ok || x != 95 {
		t.Errorf("expected right edge at x=95, got %d %t", x, ok)
	}
	_, y, _ = cam.Project(vec.V(0, 5, 0), 100, 100)
	if y >= 50 {
		t.Errorf("expected +y above the centre, got y=%d", y)
	}
}

func TestCamera_DegenerateBounds(t *testing.T) {
	cam := NewCamera()
	cam.Fit(vec.V(1, 1, 1), vec.V(1, 1, 1), 40, 40)
	if cam.Scale != 1 {
		t.Errorf("expected unit scale for a single point, got %f", cam.Scale)
	}
	x, y, ok := cam.Project(vec.V(1, 1, 1), 40, 40)
	if !ok || x != 20 || y != 20 {
		t.Errorf("expected centre, got (%d, %d)", x, y)
	}
}

func TestCamera_Zoom(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom != 10 {
		t.Errorf("expected zoom clamped to 10, got %f", cam.Zoom)
	}
	cam.Reset()
	if cam.Zoom != 1 {
		t.Errorf("expected zoom reset to 1, got %f", cam.Zoom)
	}
}

func TestDraw_Scene(t *testing.T) {
	scene := render.NewScene("draw")
	scene.NewCurve(render.CurveSpec{Points: []vec.Vector3{vec.V(-1, 0, 0), vec.V(1, 0, 0)}, Color: render.Green})
	scene.NewPoint(render.PointSpec{Pos: vec.V(0, 1, 0), Size: 4, Color: render.Blue})
	scene.NewLabel(render.LabelSpec{Pos: vec.V(1, 1, 0), Text: "t=0", Color: render.White})

	c := NewCanvas(40, 10)
	cam := NewCamera()
	FitScene(cam, scene, c)
	Draw(c, scene, cam)

	out := c.String()
	if !strings.Contains(out, "t=0") {
		t.Errorf("expected label text in output:\n%s", out)
	}
	x, y, _ := cam.Project(vec.V(0, 1, 0), c.SubWidth(), c.SubHeight())
	if !c.Get(x, y) || c.Colors[y/4][x/2] != render.Blue {
		t.Error("expected the point drawn in blue")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if NextTheme("sunset").Name != Themes[0].Name {
		t.Error("NextTheme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
	if ThemeMinimal.Palette(render.Red) != "9" {
		t.Errorf("expected fallback red, got %q", ThemeMinimal.Palette(render.Red))
	}
	if ThemeCyberpunk.Palette("chartreuse") != ThemeCyberpunk.Text {
		t.Error("unknown colours should use the theme text colour")
	}
}

func TestGraphData(t *testing.T) {
	scene := render.NewScene("graphs")
	d := scene.NewDisplay(render.DisplaySpec{Title: "x vs t"})
	a := d.NewSeries(render.Red)
	b := d.NewSeries(render.Blue)
	d.NewSeries(render.Green)
	for i := 0; i < 100; i++ {
		a.Plot(float64(i), float64(i))
		b.Plot(float64(i), float64(-i))
	}

	data, colors := GraphData(d, 10)
	if len(data) != 2 || len(colors) != 2 {
		t.Fatalf("expected the empty series dropped, got %d series", len(data))
	}
	if len(data[0]) > 11 {
		t.Errorf("expected at most 11 points after thinning, got %d", len(data[0]))
	}
	if data[0][len(data[0])-1] != 99 {
		t.Errorf("expected the last point kept, got %f", data[0][len(data[0])-1])
	}
	if colors[0] == colors[1] {
		t.Error("expected distinct series colours")
	}
}

func TestRenderGraphs(t *testing.T) {
	scene := render.NewScene("graphs")
	scene.NewDisplay(render.DisplaySpec{Title: "empty"})
	d := scene.NewDisplay(render.DisplaySpec{Title: "speed", XTitle: "t"})
	s := d.NewSeries(render.Cyan)
	s.Plot(0, 1)

	out := RenderGraphs(scene, 30, 5)
	if len(out) != 1 {
		t.Fatalf("expected one graph, got %d", len(out))
	}
	if !strings.Contains(out[0], "speed") {
		t.Errorf("expected caption in graph:\n%s", out[0])
	}
}
