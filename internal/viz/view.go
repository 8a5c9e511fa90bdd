package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// FitScene points cam at the bounds of everything in scene.
func FitScene(cam *Camera, scene *render.Scene, c *Canvas) {
	lo, hi, ok := scene.Bounds()
	if !ok {
		return
	}
	cam.Fit(lo, hi, c.SubWidth(), c.SubHeight())
}

// Draw paints scene onto c: curves first, then arrows and points, with
// labels written over the top as text.
func Draw(c *Canvas, scene *render.Scene, cam *Camera) {
	c.Clear()
	sw, sh := c.SubWidth(), c.SubHeight()

	for _, cv := range scene.Curves() {
		drawPolyline(c, cam, cv.Points(), cv.Color())
	}
	for _, a := range scene.Arrows() {
		drawArrow(c, cam, a.Pos(), a.Axis(), a.Color())
	}
	for _, p := range scene.Points() {
		x, y, ok := cam.Project(p.Pos(), sw, sh)
		if !ok {
			continue
		}
		c.FillCircle(x, y, markerRadius(p.Size()), p.Color())
	}
	for _, l := range scene.Labels() {
		text := l.Text()
		if text == "" {
			continue
		}
		x, y, ok := cam.Project(l.Pos(), sw, sh)
		if !ok {
			continue
		}
		c.PutText(x/2-len([]rune(text))/2, y/4, text, l.Color())
	}
}

// RenderScene draws scene on a fresh w x h cell canvas framed to fit.
func RenderScene(scene *render.Scene, w, h int, t Theme) string {
	c := NewCanvas(w, h)
	cam := NewCamera()
	FitScene(cam, scene, c)
	Draw(c, scene, cam)
	return c.Render(t.Palette)
}

func markerRadius(size float64) int {
	r := int(size / 4)
	if r > 3 {
		r = 3
	}
	if r < 0 {
		r = 0
	}
	return r
}

func drawPolyline(c *Canvas, cam *Camera, pts []vec.Vector3, col render.Color) {
	sw, sh := c.SubWidth(), c.SubHeight()
	if len(pts) == 1 {
		if x, y, ok := cam.Project(pts[0], sw, sh); ok {
			c.Set(x, y, col)
		}
		return
	}
	for i := 1; i < len(pts); i++ {
		x0, y0, ok0 := cam.Project(pts[i-1], sw, sh)
		x1, y1, ok1 := cam.Project(pts[i], sw, sh)
		if !ok0 && !ok1 {
			continue
		}
		c.DrawLine(x0, y0, x1, y1, col)
	}
}

func drawArrow(c *Canvas, cam *Camera, pos, axis vec.Vector3, col render.Color) {
	sw, sh := c.SubWidth(), c.SubHeight()
	tip := pos.Add(axis)
	x0, y0, ok0 := cam.Project(pos, sw, sh)
	x1, y1, ok1 := cam.Project(tip, sw, sh)
	if !ok0 && !ok1 {
		return
	}
	c.DrawLine(x0, y0, x1, y1, col)

	// two barbs at a quarter of the shaft length, 30 degrees either side
	back := axis.Scale(-0.25)
	for _, a := range []float64{0.5236, -0.5236} {
		bx, by, _ := cam.Project(tip.Add(back.Rotate(a, vec.UnitZ)), sw, sh)
		c.DrawLine(x1, y1, bx, by, col)
	}
}

// GraphData extracts the dependent values of every non-empty series in d,
// thinned to at most maxPoints each, with matching asciigraph colours.
func GraphData(d render.Display, maxPoints int) ([][]float64, []asciigraph.AnsiColor) {
	var (
		data   [][]float64
		colors []asciigraph.AnsiColor
	)
	for _, s := range d.Series() {
		pts := s.Points()
		if len(pts) == 0 {
			continue
		}
		stride := 1
		if maxPoints > 0 && len(pts) > maxPoints {
			stride = (len(pts) + maxPoints - 1) / maxPoints
		}
		ys := make([]float64, 0, len(pts)/stride+2)
		for i := 0; i < len(pts); i += stride {
			ys = append(ys, pts[i].Y)
		}
		if last := pts[len(pts)-1].Y; (len(pts)-1)%stride != 0 {
			ys = append(ys, last)
		}
		if len(ys) == 1 {
			ys = append(ys, ys[0])
		}
		data = append(data, ys)
		colors = append(colors, ansiColor(s.Color()))
	}
	return data, colors
}

func ansiColor(c render.Color) asciigraph.AnsiColor {
	if col, ok := asciigraph.ColorNames[string(c)]; ok {
		return col
	}
	return asciigraph.Default
}

// caption names the display and the independent range it covers.
func caption(d render.Display) string {
	spec := d.Spec()
	parts := []string{spec.Title}
	for _, s := range d.Series() {
		pts := s.Points()
		if len(pts) == 0 {
			continue
		}
		x := spec.XTitle
		if x == "" {
			x = "x"
		}
		parts = append(parts, fmt.Sprintf("%s %.3g..%.3g", x, pts[0].X, pts[len(pts)-1].X))
		break
	}
	if spec.YTitle != "" {
		parts = append(parts, spec.YTitle)
	}
	return strings.Join(parts, "  ")
}

// RenderGraphs plots every display in scene that has data.
func RenderGraphs(scene *render.Scene, width, height int) []string {
	var out []string
	for _, d := range scene.Displays() {
		data, colors := GraphData(d, width)
		if len(data) == 0 {
			continue
		}
		out = append(out, asciigraph.PlotMany(data,
			asciigraph.Width(width),
			asciigraph.Height(height),
			asciigraph.SeriesColors(colors...),
			asciigraph.Caption(caption(d)),
		))
	}
	return out
}
