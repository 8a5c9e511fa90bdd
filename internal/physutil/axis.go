package physutil

import (
	"fmt"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

type AxisKind int

const (
	AxisX AxisKind = iota
	AxisY
	AxisArbitrary
)

func (k AxisKind) String() string {
	switch k {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisArbitrary:
		return "arbitrary"
	default:
		return fmt.Sprintf("AxisKind(%d)", int(k))
	}
}

// LabelOrientation places tick labels relative to their ticks.
type LabelOrientation int

const (
	LabelDown LabelOrientation = iota
	LabelUp
	LabelLeft
	LabelRight
)

func (o LabelOrientation) String() string {
	switch o {
	case LabelDown:
		return "down"
	case LabelUp:
		return "up"
	case LabelLeft:
		return "left"
	case LabelRight:
		return "right"
	default:
		return fmt.Sprintf("LabelOrientation(%d)", int(o))
	}
}

func ParseLabelOrientation(s string) (LabelOrientation, error) {
	switch s {
	case "down", "":
		return LabelDown, nil
	case "up":
		return LabelUp, nil
	case "left":
		return LabelLeft, nil
	case "right":
		return LabelRight, nil
	}
	return 0, fmt.Errorf("%w: unknown label orientation %q", ErrInvalidArgument, s)
}

// shift returns the label offset for an axis of the given length.
func (o LabelOrientation) shift(length float64) (vec.Vector3, error) {
	switch o {
	case LabelDown:
		return vec.V(0, -0.05*length, 0), nil
	case LabelUp:
		return vec.V(0, 0.05*length, 0), nil
	case LabelLeft:
		return vec.V(-0.1*length, 0, 0), nil
	case LabelRight:
		return vec.V(0.1*length, 0, 0), nil
	}
	return vec.Zero, fmt.Errorf("%w: label orientation %v", ErrInvalidArgument, o)
}

type AxisOptions struct {
	Kind AxisKind

	// Direction is the unit vector of the axis. Ignored for AxisY; defaults
	// to +x when zero.
	Direction vec.Vector3

	// StartPos defaults to (-size.x/2, -4*size.y, 0) of the tracked object.
	StartPos *vec.Vector3

	// Length defaults to the tracked object's x extent when zero.
	Length float64

	// Labels replaces the numeric tick labels; it must have one entry per tick.
	Labels []string

	Orientation LabelOrientation
	AxisColor   render.Color
	LabelColor  render.Color
}

// ReorientOptions changes an axis in place. Nil pointers, a zero length and
// a nil label slice keep the current value.
type ReorientOptions struct {
	Direction   *vec.Vector3
	StartPos    *vec.Vector3
	Length      float64
	Labels      []string
	Orientation *LabelOrientation
}

type axisState int

const (
	axisUnbuilt axisState = iota
	axisBuilt
)

// Axis is a labelled tick-mark axis. Once built it follows its tracked
// object by translating its handles, without recomputing tick placement.
type Axis struct {
	r   render.Renderer
	obj TrackedObject

	numLabels  int
	kind       AxisKind
	dir        vec.Vector3
	start      vec.Vector3
	length     float64
	labelText  []string
	labelShift vec.Vector3
	axisColor  render.Color
	labelColor render.Color

	state   axisState
	ticks   []render.Point
	labels  []render.Label
	line    render.Curve
	lastPos vec.Vector3
}

const axisComponent = "axis"

// NewAxis builds an axis of numLabels ticks that follows obj.
func NewAxis(r render.Renderer, obj TrackedObject, numLabels int, opts AxisOptions) (*Axis, error) {
	if r == nil || obj == nil {
		return nil, invalid(axisComponent, "new", "renderer and tracked object are required")
	}
	if numLabels < 2 {
		return nil, invalid(axisComponent, "new", "numLabels must be at least 2, got %d", numLabels)
	}
	if opts.Kind < AxisX || opts.Kind > AxisArbitrary {
		return nil, invalid(axisComponent, "new", "axis kind %v", opts.Kind)
	}

	pos, size := obj.Pos(), obj.Size()
	if err := firstErr(checkVector("object position", pos), checkVector("object size", size)); err != nil {
		return nil, fail(axisComponent, "new", err)
	}

	a := &Axis{
		r:          r,
		obj:        obj,
		numLabels:  numLabels,
		kind:       opts.Kind,
		dir:        opts.Direction,
		length:     opts.Length,
		labelText:  opts.Labels,
		axisColor:  opts.AxisColor,
		labelColor: opts.LabelColor,
		lastPos:    pos,
	}
	switch {
	case a.kind == AxisY:
		a.dir = vec.UnitY
	case a.dir == vec.Zero:
		a.dir = vec.UnitX
	}
	if a.length == 0 {
		a.length = size.X
	}
	if opts.StartPos != nil {
		a.start = *opts.StartPos
	} else {
		a.start = vec.V(-size.X/2, -4*size.Y, 0)
	}
	if a.axisColor == "" {
		a.axisColor = render.Yellow
	}
	if a.labelColor == "" {
		a.labelColor = render.White
	}

	if err := a.check(); err != nil {
		return nil, fail(axisComponent, "new", err)
	}
	shift, err := opts.Orientation.shift(a.length)
	if err != nil {
		return nil, fail(axisComponent, "new", err)
	}
	a.labelShift = shift

	a.build()
	return a, nil
}

func (a *Axis) check() error {
	if a.labelText != nil && len(a.labelText) != a.numLabels {
		return fmt.Errorf("%w: %d labels given for %d ticks", ErrInvalidArgument, len(a.labelText), a.numLabels)
	}
	return firstErr(
		checkVector("axis", a.dir),
		checkVector("startPos", a.start),
		checkScalar("length", a.length),
	)
}

// build places ticks, labels and the line. The first call creates the
// handles; later calls move them.
func (a *Axis) build() {
	final := a.start.Add(a.dir.Scale(a.length))
	step := a.dir.Scale(a.length / float64(a.numLabels-1))

	for i := 0; i < a.numLabels; i++ {
		at := a.start.Add(step.Scale(float64(i)))
		text := a.tickText(i, at)

		if a.state == axisBuilt {
			a.ticks[i].SetPos(at)
			a.labels[i].SetPos(at.Add(a.labelShift))
			a.labels[i].SetText(text)
			continue
		}
		a.ticks = append(a.ticks, a.r.NewPoint(render.PointSpec{Pos: at, Size: 6, Color: a.axisColor}))
		a.labels = append(a.labels, a.r.NewLabel(render.LabelSpec{
			Pos:    at.Add(a.labelShift),
			Text:   text,
			Height: 8,
			Color:  a.labelColor,
		}))
	}

	if a.state == axisBuilt {
		a.line.SetPoints([]vec.Vector3{a.start, final})
		return
	}
	a.line = a.r.NewCurve(render.CurveSpec{Points: []vec.Vector3{a.start, final}, Color: a.axisColor})
	a.state = axisBuilt
}

func (a *Axis) tickText(i int, at vec.Vector3) string {
	if a.labelText != nil {
		return a.labelText[i]
	}
	if a.kind == AxisY {
		return fmt.Sprintf("%.2f", at.Y)
	}
	return fmt.Sprintf("%.2f", at.X)
}

// Update shifts every tick, label and line point by however far the tracked
// object has moved since the last call.
func (a *Axis) Update() error {
	pos := a.obj.Pos()
	if err := checkVector("object position", pos); err != nil {
		return fail(axisComponent, "update", err)
	}
	if pos == a.lastPos {
		return nil
	}

	d := pos.Sub(a.lastPos)
	for i := range a.ticks {
		a.ticks[i].SetPos(a.ticks[i].Pos().Add(d))
		a.labels[i].SetPos(a.labels[i].Pos().Add(d))
	}
	pts := a.line.Points()
	for i := range pts {
		pts[i] = pts[i].Add(d)
	}
	a.line.SetPoints(pts)

	a.lastPos = pos
	return nil
}

// Reorient changes direction, start, length, labels or label orientation and
// moves the existing handles to match. On error the axis is unchanged.
func (a *Axis) Reorient(o ReorientOptions) error {
	next := *a
	if o.Direction != nil {
		next.dir = *o.Direction
	}
	if o.StartPos != nil {
		next.start = *o.StartPos
	}
	if o.Length != 0 {
		next.length = o.Length
	}
	if o.Labels != nil {
		next.labelText = o.Labels
	}
	if err := next.check(); err != nil {
		return fail(axisComponent, "reorient", err)
	}
	if o.Orientation != nil {
		shift, err := o.Orientation.shift(next.length)
		if err != nil {
			return fail(axisComponent, "reorient", err)
		}
		next.labelShift = shift
	}

	*a = next
	a.build()
	return nil
}

func (a *Axis) Ticks() []render.Point {
	out := make([]render.Point, len(a.ticks))
	copy(out, a.ticks)
	return out
}

func (a *Axis) Labels() []render.Label {
	out := make([]render.Label, len(a.labels))
	copy(out, a.labels)
	return out
}

func (a *Axis) Line() render.Curve      { return a.line }
func (a *Axis) NumLabels() int          { return a.numLabels }
func (a *Axis) Kind() AxisKind          { return a.kind }
func (a *Axis) Direction() vec.Vector3  { return a.dir }
func (a *Axis) StartPos() vec.Vector3   { return a.start }
func (a *Axis) Length() float64         { return a.length }
func (a *Axis) LabelShift() vec.Vector3 { return a.labelShift }
func (a *Axis) LastPos() vec.Vector3    { return a.lastPos }
func (a *Axis) Built() bool             { return a.state == axisBuilt }
