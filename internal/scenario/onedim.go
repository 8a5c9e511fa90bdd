package scenario

import (
	"errors"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// OneD rolls a constant-velocity buggy along a 3 m track until it leaves
// either end.
type OneD struct {
	base

	car   *Body
	axis  *physutil.Axis
	graph *physutil.Graph
	timer *physutil.Timer
	path  render.Curve
}

func NewOneD() *OneD {
	return &OneD{base: base{
		name: "one_d",
		desc: "constant-velocity buggy on a track; 16-tick axis, position graph",
		dt:   0.001,
		params: []Param{
			{"v0", -0.5, "buggy velocity (m/s)"},
			{"mass", 1, "buggy mass (kg)"},
			{"half_track", 1.5, "half the track length (m)"},
		},
	}}
}

func (s *OneD) Setup(r render.Renderer, dt float64) error {
	half := s.p("half_track")
	track := physutil.Fixed{At: vec.V(0, -0.1, 0), Extent: vec.V(2*half, 0.1, 1)}
	box(r, track.At, track.Extent, 0, render.Green)

	s.car = NewBody(vec.Zero, vec.V(s.p("v0"), 0, 0), s.p("mass"), vec.V(0.3, 0.1, 0.2))
	s.car.Draw(r, render.Blue, 8)
	s.path = trail(r, s.car.Position)

	var err error
	if s.axis, err = physutil.NewAxis(r, track, 16, physutil.AxisOptions{Length: 2 * half}); err != nil {
		return err
	}
	if s.graph, err = physutil.NewGraph(r, 1, physutil.GraphOptions{Title: "position vs time"}); err != nil {
		return err
	}
	if s.timer, err = physutil.NewTimer(r, 1, 1, physutil.TimerOptions{}); err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *OneD) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.car.Euler(vec.Zero, dt)

	err := errors.Join(
		s.timer.Update(s.t),
		s.graph.Plot(s.t, s.car.Position.X),
		s.axis.Update(),
	)
	s.path.Append(s.car.Position)
	s.t += dt
	return err
}

func (s *OneD) Done() bool {
	if !s.ready {
		return false
	}
	half := s.p("half_track")
	return s.car.Position.X <= -half || s.car.Position.X >= half
}

func (s *OneD) Summary() []Stat {
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("position", "%v", s.car.Position),
	}
}
