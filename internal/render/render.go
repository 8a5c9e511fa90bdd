// Package render defines the rendering capability the instrumentation
// helpers draw through, and provides Scene, an in-memory scene graph that
// implements it.
//
// The capability is deliberately small:
//
//   - [Point]: positioned, coloured, sized marker
//   - [Arrow]: positioned, coloured, directional marker
//   - [Label]: positioned text with mutable text and position
//   - [Curve]: polyline with a mutable ordered list of points
//   - [Display]: a graph surface grouping 2-D [Series]
//
// Views (terminal, SVG) read a [Scene] after or during a run; they never
// write to it.
package render

import "github.com/san-kum/physlab/internal/vec"

// Color is a lowercase colour name ("red", "orange", ...).
type Color string

const (
	Red     Color = "red"
	Green   Color = "green"
	Blue    Color = "blue"
	Yellow  Color = "yellow"
	Orange  Color = "orange"
	Cyan    Color = "cyan"
	Magenta Color = "magenta"
	White   Color = "white"
	Black   Color = "black"
	Gray    Color = "gray"
)

type PointSpec struct {
	Pos   vec.Vector3
	Size  float64
	Color Color
}

type ArrowSpec struct {
	Pos   vec.Vector3
	Axis  vec.Vector3
	Color Color
}

type LabelSpec struct {
	Pos    vec.Vector3
	Text   string
	Height float64
	Box    bool
	Color  Color
}

type CurveSpec struct {
	Points []vec.Vector3
	Radius float64
	Color  Color
}

type DisplaySpec struct {
	Title  string
	XTitle string
	YTitle string
	Width  int
	Height int
}

type Point interface {
	Pos() vec.Vector3
	SetPos(vec.Vector3)
	Size() float64
	Color() Color
}

type Arrow interface {
	Pos() vec.Vector3
	Axis() vec.Vector3
	Color() Color
}

type Label interface {
	Pos() vec.Vector3
	SetPos(vec.Vector3)
	Text() string
	SetText(string)
	Height() float64
	Color() Color
}

type Curve interface {
	Points() []vec.Vector3
	SetPoints([]vec.Vector3)
	Append(vec.Vector3)
	Color() Color
}

// XY is one plotted (independent, dependent) pair.
type XY struct {
	X, Y float64
}

type Series interface {
	Plot(x, y float64)
	Points() []XY
	Color() Color
}

type Display interface {
	NewSeries(c Color) Series
	Series() []Series
	Spec() DisplaySpec
}

// Renderer creates primitives. Every created primitive stays in the scene;
// there is no removal.
type Renderer interface {
	NewPoint(PointSpec) Point
	NewArrow(ArrowSpec) Arrow
	NewLabel(LabelSpec) Label
	NewCurve(CurveSpec) Curve
	NewDisplay(DisplaySpec) Display
}
