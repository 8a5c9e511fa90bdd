package render

import (
	"math"

	"github.com/san-kum/physlab/internal/vec"
)

// Scene is an append-only in-memory scene graph. It is not safe for
// concurrent use.
type Scene struct {
	Title string

	points   []*point
	arrows   []*arrow
	labels   []*label
	curves   []*curve
	displays []*display
}

func NewScene(title string) *Scene {
	return &Scene{Title: title}
}

func (s *Scene) NewPoint(spec PointSpec) Point {
	p := &point{spec: spec}
	s.points = append(s.points, p)
	return p
}

func (s *Scene) NewArrow(spec ArrowSpec) Arrow {
	a := &arrow{spec: spec}
	s.arrows = append(s.arrows, a)
	return a
}

func (s *Scene) NewLabel(spec LabelSpec) Label {
	l := &label{spec: spec}
	s.labels = append(s.labels, l)
	return l
}

func (s *Scene) NewCurve(spec CurveSpec) Curve {
	pts := make([]vec.Vector3, len(spec.Points))
	copy(pts, spec.Points)
	spec.Points = nil
	c := &curve{spec: spec, pts: pts}
	s.curves = append(s.curves, c)
	return c
}

func (s *Scene) NewDisplay(spec DisplaySpec) Display {
	d := &display{spec: spec}
	s.displays = append(s.displays, d)
	return d
}

func (s *Scene) Points() []Point {
	out := make([]Point, len(s.points))
	for i, p := range s.points {
		out[i] = p
	}
	return out
}

func (s *Scene) Arrows() []Arrow {
	out := make([]Arrow, len(s.arrows))
	for i, a := range s.arrows {
		out[i] = a
	}
	return out
}

func (s *Scene) Labels() []Label {
	out := make([]Label, len(s.labels))
	for i, l := range s.labels {
		out[i] = l
	}
	return out
}

func (s *Scene) Curves() []Curve {
	out := make([]Curve, len(s.curves))
	for i, c := range s.curves {
		out[i] = c
	}
	return out
}

func (s *Scene) Displays() []Display {
	out := make([]Display, len(s.displays))
	for i, d := range s.displays {
		out[i] = d
	}
	return out
}

// Len returns the total number of primitives in the scene.
func (s *Scene) Len() int {
	return len(s.points) + len(s.arrows) + len(s.labels) + len(s.curves) + len(s.displays)
}

// Bounds returns the axis-aligned box containing all spatial geometry.
// ok is false for a scene with no geometry.
func (s *Scene) Bounds() (lo, hi vec.Vector3, ok bool) {
	lo = vec.V(math.Inf(1), math.Inf(1), math.Inf(1))
	hi = vec.V(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	grow := func(p vec.Vector3) {
		if !p.IsFinite() {
			return
		}
		ok = true
		lo = vec.V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = vec.V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}
	for _, p := range s.points {
		grow(p.spec.Pos)
	}
	for _, a := range s.arrows {
		grow(a.spec.Pos)
		grow(a.spec.Pos.Add(a.spec.Axis))
	}
	for _, l := range s.labels {
		grow(l.spec.Pos)
	}
	for _, c := range s.curves {
		for _, p := range c.pts {
			grow(p)
		}
	}
	if !ok {
		return vec.Zero, vec.Zero, false
	}
	return lo, hi, true
}

type point struct{ spec PointSpec }

func (p *point) Pos() vec.Vector3     { return p.spec.Pos }
func (p *point) SetPos(v vec.Vector3) { p.spec.Pos = v }
func (p *point) Size() float64        { return p.spec.Size }
func (p *point) Color() Color         { return p.spec.Color }

type arrow struct{ spec ArrowSpec }

func (a *arrow) Pos() vec.Vector3  { return a.spec.Pos }
func (a *arrow) Axis() vec.Vector3 { return a.spec.Axis }
func (a *arrow) Color() Color      { return a.spec.Color }

type label struct{ spec LabelSpec }

func (l *label) Pos() vec.Vector3     { return l.spec.Pos }
func (l *label) SetPos(v vec.Vector3) { l.spec.Pos = v }
func (l *label) Text() string         { return l.spec.Text }
func (l *label) SetText(t string)     { l.spec.Text = t }
func (l *label) Height() float64      { return l.spec.Height }
func (l *label) Color() Color         { return l.spec.Color }

type curve struct {
	spec CurveSpec
	pts  []vec.Vector3
}

// Points returns a copy; use SetPoints to change the path.
func (c *curve) Points() []vec.Vector3 {
	out := make([]vec.Vector3, len(c.pts))
	copy(out, c.pts)
	return out
}

func (c *curve) SetPoints(pts []vec.Vector3) {
	c.pts = append(c.pts[:0:0], pts...)
}

func (c *curve) Append(p vec.Vector3) { c.pts = append(c.pts, p) }
func (c *curve) Color() Color         { return c.spec.Color }

type display struct {
	spec   DisplaySpec
	series []*series
}

func (d *display) NewSeries(c Color) Series {
	s := &series{color: c}
	d.series = append(d.series, s)
	return s
}

func (d *display) Series() []Series {
	out := make([]Series, len(d.series))
	for i, s := range d.series {
		out[i] = s
	}
	return out
}

func (d *display) Spec() DisplaySpec { return d.spec }

type series struct {
	color Color
	pts   []XY
}

func (s *series) Plot(x, y float64) { s.pts = append(s.pts, XY{x, y}) }
func (s *series) Color() Color      { return s.color }

func (s *series) Points() []XY {
	out := make([]XY, len(s.pts))
	copy(out, s.pts)
	return out
}
