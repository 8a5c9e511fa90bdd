// Package export writes scenes and graphs as standalone SVG documents.
package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/viz"
)

const background = "#0a0a0a"

var svgColors = map[render.Color]string{
	render.Red:     "#ff3355",
	render.Green:   "#00cc66",
	render.Blue:    "#3399ff",
	render.Yellow:  "#ffee00",
	render.Orange:  "#ff8800",
	render.Cyan:    "#00e5ff",
	render.Magenta: "#ff00ff",
	render.White:   "#ffffff",
	render.Black:   "#000000",
	render.Gray:    "#888888",
}

func svgColor(c render.Color) string {
	if s, ok := svgColors[c]; ok {
		return s
	}
	return "#ffffff"
}

func header(sb *strings.Builder, width, height int) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// frame maps world xy onto a width x height viewport with 10% padding.
type frame struct {
	minX, minY, scale float64
	offX, offY        float64
	height            float64
}

func newFrame(lo, hi vec.Vector3, width, height int) frame {
	rangeX, rangeY := hi.X-lo.X, hi.Y-lo.Y
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	w, h := float64(width)*0.8, float64(height)*0.8
	scale := math.Min(w/rangeX, h/rangeY)
	return frame{
		minX:   lo.X,
		minY:   lo.Y,
		scale:  scale,
		offX:   (float64(width) - rangeX*scale) / 2,
		offY:   (float64(height) - rangeY*scale) / 2,
		height: float64(height),
	}
}

func (f frame) xy(p vec.Vector3) (float64, float64) {
	x := f.offX + (p.X-f.minX)*f.scale
	y := f.height - (f.offY + (p.Y-f.minY)*f.scale)
	return x, y
}

// SceneToSVG draws the spatial primitives of scene, projected onto the xy
// plane. Displays are left out; see DisplayToSVG.
func SceneToSVG(scene *render.Scene, width, height int) string {
	var sb strings.Builder
	header(&sb, width, height)

	lo, hi, ok := scene.Bounds()
	if !ok {
		sb.WriteString("</svg>")
		return sb.String()
	}
	f := newFrame(lo, hi, width, height)

	for _, c := range scene.Curves() {
		pts := c.Points()
		if len(pts) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, svgColor(c.Color()))
		for i, p := range pts {
			x, y := f.xy(p)
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		}
		sb.WriteString("\"/>\n")
	}
	for _, a := range scene.Arrows() {
		x0, y0 := f.xy(a.Pos())
		x1, y1 := f.xy(a.Pos().Add(a.Axis()))
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, x0, y0, x1, y1, svgColor(a.Color()))
	}
	for _, p := range scene.Points() {
		x, y := f.xy(p.Pos())
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, math.Max(1, p.Size()/2), svgColor(p.Color()))
	}
	for _, l := range scene.Labels() {
		if l.Text() == "" {
			continue
		}
		x, y := f.xy(l.Pos())
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.0f" text-anchor="middle">%s</text>
`, x, y, svgColor(l.Color()), math.Max(8, l.Height()*1.5), html.EscapeString(l.Text()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// DisplayToSVG plots every series of d as a polyline against a shared
// padded range, with the title across the top.
func DisplayToSVG(d render.Display, width, height int) string {
	var sb strings.Builder
	header(&sb, width, height)

	lo := vec.V(math.Inf(1), math.Inf(1), 0)
	hi := vec.V(math.Inf(-1), math.Inf(-1), 0)
	hasData := false
	for _, s := range d.Series() {
		for _, p := range s.Points() {
			lo = vec.V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), 0)
			hi = vec.V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), 0)
			hasData = true
		}
	}

	spec := d.Spec()
	if spec.Title != "" {
		fmt.Fprintf(&sb, `<text x="%d" y="16" fill="#ffffff" font-family="monospace" font-size="12" text-anchor="middle">%s</text>
`, width/2, html.EscapeString(spec.Title))
	}
	if !hasData {
		sb.WriteString("</svg>")
		return sb.String()
	}

	// stretch each axis independently; graphs are not to scale
	rangeX, rangeY := hi.X-lo.X, hi.Y-lo.Y
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	pad := 0.1
	for _, s := range d.Series() {
		pts := s.Points()
		if len(pts) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, svgColor(s.Color()))
		for i, p := range pts {
			x := (pad + (1-2*pad)*(p.X-lo.X)/rangeX) * float64(width)
			y := float64(height) - (pad+(1-2*pad)*(p.Y-lo.Y)/rangeY)*float64(height)
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, one circle per set dot,
// keeping each cell's colour.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := int(float64(canvas.SubWidth()) * scale)
	height := int(float64(canvas.SubHeight()) * scale)

	var sb strings.Builder
	header(&sb, width, height)

	dotRadius := scale * 0.4
	for y := 0; y < canvas.SubHeight(); y++ {
		for x := 0; x < canvas.SubWidth(); x++ {
			if !canvas.Get(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, svgColor(canvas.Colors[y/4][x/2]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
