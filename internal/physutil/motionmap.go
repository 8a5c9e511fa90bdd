package physutil

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

type MarkerKind int

const (
	MarkerArrow MarkerKind = iota
	MarkerBreadcrumbs
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerArrow:
		return "arrow"
	case MarkerBreadcrumbs:
		return "breadcrumbs"
	default:
		return fmt.Sprintf("MarkerKind(%d)", int(k))
	}
}

// ParseMarkerKind accepts "arrow" and "breadcrumbs".
func ParseMarkerKind(s string) (MarkerKind, error) {
	switch s {
	case "arrow", "":
		return MarkerArrow, nil
	case "breadcrumbs", "breadcrumb":
		return MarkerBreadcrumbs, nil
	}
	return 0, fmt.Errorf("%w: unknown marker kind %q", ErrInvalidArgument, s)
}

// MotionMapOptions configures both motion map variants. Start from
// DefaultMotionMapOptions; empty colours and a zero scale fall back to the
// defaults.
type MotionMapOptions struct {
	Kind  MarkerKind
	Scale float64
	Color render.Color

	// LabelOrder drops the 1-based marker number below each marker.
	LabelOrder  bool
	LabelOffset vec.Vector3

	// DropTime drops a "t=<t>s" label above each marker.
	DropTime   bool
	TimeOffset vec.Vector3

	ArrowOffset vec.Vector3
	LabelColor  render.Color
}

func DefaultMotionMapOptions() MotionMapOptions {
	return MotionMapOptions{
		Kind:       MarkerArrow,
		Scale:      1,
		Color:      render.Red,
		LabelOrder: true,
		LabelColor: render.White,
	}
}

func (o MotionMapOptions) withDefaults() MotionMapOptions {
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Color == "" {
		o.Color = render.Red
	}
	if o.LabelColor == "" {
		o.LabelColor = render.White
	}
	return o
}

func (o MotionMapOptions) validate() error {
	if o.Kind != MarkerArrow && o.Kind != MarkerBreadcrumbs {
		return fmt.Errorf("%w: marker kind %v", ErrInvalidArgument, o.Kind)
	}
	return firstErr(
		checkScalar("markerScale", o.Scale),
		checkVector("labelMarkerOffset", o.LabelOffset),
		checkVector("timeOffset", o.TimeOffset),
		checkVector("arrowOffset", o.ArrowOffset),
	)
}

// defaultQuantity is used by Update when no quantity is given.
var defaultQuantity = vec.UnitX

// sequencer holds what both motion map variants share; they differ only in
// how interval is derived and whether the threshold test is inclusive.
type sequencer struct {
	component string
	r         render.Renderer
	obj       TrackedObject
	opts      MotionMapOptions
	interval  float64
	inclusive bool
	cur       int
}

func newSequencer(component string, r render.Renderer, obj TrackedObject, opts MotionMapOptions) (sequencer, error) {
	if r == nil || obj == nil {
		return sequencer{}, invalid(component, "new", "renderer and tracked object are required")
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return sequencer{}, fail(component, "new", err)
	}
	return sequencer{component: component, r: r, obj: obj, opts: opts}, nil
}

func (s *sequencer) crossed(t float64) bool {
	threshold := s.interval * float64(s.cur)
	if s.inclusive {
		return t >= threshold
	}
	return t > threshold
}

func (s *sequencer) update(t float64, q vec.Vector3) error {
	if err := firstErr(checkScalar("t", t), checkVector("quantity", q)); err != nil {
		return fail(s.component, "update", err)
	}
	if !s.crossed(t) {
		return nil
	}

	pos := s.obj.Pos()
	if err := checkVector("object position", pos); err != nil {
		return fail(s.component, "update", err)
	}

	s.cur++

	o := s.opts
	// ArrowOffset moves the whole marker, breadcrumbs and labels included.
	at := pos.Add(o.ArrowOffset)
	switch o.Kind {
	case MarkerArrow:
		s.r.NewArrow(render.ArrowSpec{Pos: at, Axis: q.Scale(o.Scale), Color: o.Color})
	case MarkerBreadcrumbs:
		s.r.NewPoint(render.PointSpec{Pos: at, Size: 10 * o.Scale * q.Mag(), Color: o.Color})
	}

	half := vec.V(0, 0.5*o.Scale, 0)
	if o.DropTime {
		s.r.NewLabel(render.LabelSpec{
			Pos:    at.Add(half).Add(o.TimeOffset),
			Text:   "t=" + formatSeconds(t) + "s",
			Height: 10,
			Color:  o.LabelColor,
		})
	}
	if o.LabelOrder {
		s.r.NewLabel(render.LabelSpec{
			Pos:    at.Sub(half).Add(o.LabelOffset),
			Text:   strconv.Itoa(s.cur),
			Height: 10,
			Color:  o.LabelColor,
		})
	}
	return nil
}

// MotionMap places up to n markers spread evenly over an expected run time
// tf. A marker fires when t strictly exceeds the next threshold.
type MotionMap struct {
	sequencer
	tf float64
	n  int
}

// NewMotionMap returns a motion map with interval tf/n.
func NewMotionMap(r render.Renderer, obj TrackedObject, tf float64, n int, opts MotionMapOptions) (*MotionMap, error) {
	const component = "motionmap"
	seq, err := newSequencer(component, r, obj, opts)
	if err != nil {
		return nil, err
	}
	if err := checkScalar("tf", tf); err != nil {
		return nil, fail(component, "new", err)
	}
	if tf <= 0 || n <= 0 {
		return nil, invalid(component, "new", "tf and numMarkers must be positive (tf=%v, numMarkers=%d)", tf, n)
	}
	seq.interval = tf / float64(n)
	return &MotionMap{sequencer: seq, tf: tf, n: n}, nil
}

// Update drops a marker of unit quantity if t has crossed the next threshold.
func (m *MotionMap) Update(t float64) error { return m.update(t, defaultQuantity) }

// UpdateQuantity drops a marker encoding q (arrow axis or breadcrumb size)
// if t has crossed the next threshold.
func (m *MotionMap) UpdateQuantity(t float64, q vec.Vector3) error { return m.update(t, q) }

// Markers returns the number of markers placed so far.
func (m *MotionMap) Markers() int              { return m.cur }
func (m *MotionMap) Interval() float64         { return m.interval }
func (m *MotionMap) Horizon() float64          { return m.tf }
func (m *MotionMap) NumMarkers() int           { return m.n }
func (m *MotionMap) Options() MotionMapOptions { return m.opts }

// MotionMapN places a marker every numSteps steps of size dt. Unlike
// MotionMap the threshold test is inclusive, so t equal to a threshold fires.
type MotionMapN struct {
	sequencer
	dt       float64
	numSteps int
}

// NewMotionMapN returns a motion map with interval dt*numSteps.
func NewMotionMapN(r render.Renderer, obj TrackedObject, dt float64, numSteps int, opts MotionMapOptions) (*MotionMapN, error) {
	const component = "motionmapn"
	seq, err := newSequencer(component, r, obj, opts)
	if err != nil {
		return nil, err
	}
	if err := checkScalar("dt", dt); err != nil {
		return nil, fail(component, "new", err)
	}
	if dt <= 0 || numSteps <= 0 {
		return nil, invalid(component, "new", "dt and numSteps must be positive (dt=%v, numSteps=%d)", dt, numSteps)
	}
	seq.interval = dt * float64(numSteps)
	seq.inclusive = true
	return &MotionMapN{sequencer: seq, dt: dt, numSteps: numSteps}, nil
}

func (m *MotionMapN) Update(t float64) error                        { return m.update(t, defaultQuantity) }
func (m *MotionMapN) UpdateQuantity(t float64, q vec.Vector3) error { return m.update(t, q) }

func (m *MotionMapN) Markers() int              { return m.cur }
func (m *MotionMapN) Interval() float64         { return m.interval }
func (m *MotionMapN) Dt() float64               { return m.dt }
func (m *MotionMapN) NumSteps() int             { return m.numSteps }
func (m *MotionMapN) Options() MotionMapOptions { return m.opts }

// formatSeconds prints t in shortest round-trip form, always with a decimal
// point, switching to exponent form outside [1e-4, 1e16).
func formatSeconds(t float64) string {
	a := math.Abs(t)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(t, 'e', -1, 64)
	}
	s := strconv.FormatFloat(t, 'f', -1, 64)
	for _, c := range s {
		if c == '.' {
			return s
		}
	}
	return s + ".0"
}
