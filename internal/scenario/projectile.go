package scenario

import (
	"errors"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Projectile launches a ball across a 300 m field under uniform gravity
// until it comes back down.
type Projectile struct {
	base

	ball  *Body
	g     vec.Vector3
	xAxis *physutil.Axis
	yAxis *physutil.Axis
	mm    *physutil.MotionMap
	graph *physutil.Graph
	timer *physutil.Timer
	path  render.Curve
}

func NewProjectile() *Projectile {
	return &Projectile{base: base{
		name: "projectile",
		desc: "ball launched over a field; x/y axes, velocity motion map, position graph",
		dt:   0.001,
		params: []Param{
			{"mass", 0.6, "ball mass (kg)"},
			{"vx", 30, "initial horizontal velocity (m/s)"},
			{"vy", 40, "initial vertical velocity (m/s)"},
			{"g", 9.8, "gravitational acceleration (m/s^2)"},
			{"horizon", 8.163, "expected flight time for the motion map (s)"},
			{"markers", 10, "number of motion map markers"},
		},
	}}
}

func (s *Projectile) Setup(r render.Renderer, dt float64) error {
	field := physutil.Fixed{At: vec.Zero, Extent: vec.V(300, 10, 100)}
	box(r, field.At, field.Extent, 0, render.Green)

	s.ball = NewBody(vec.V(-150, 0, 0), vec.V(s.p("vx"), s.p("vy"), 0), s.p("mass"), vec.V(10, 10, 10))
	s.ball.Draw(r, render.Blue, 10)
	s.g = vec.V(0, -s.p("g"), 0)

	var err error
	if s.xAxis, err = physutil.NewAxis(r, field, 10, physutil.AxisOptions{}); err != nil {
		return err
	}
	yStart := vec.V(-150, 0, 0)
	s.yAxis, err = physutil.NewAxis(r, field, 5, physutil.AxisOptions{
		Kind:        physutil.AxisY,
		Orientation: physutil.LabelLeft,
		StartPos:    &yStart,
		Length:      100,
	})
	if err != nil {
		return err
	}

	s.graph, err = physutil.NewGraph(r, 2, physutil.GraphOptions{
		Title: "position vs time", XTitle: "t (s)", YTitle: "x, y (m)",
	})
	if err != nil {
		return err
	}
	s.path = trail(r, s.ball.Position)

	opts := physutil.DefaultMotionMapOptions()
	opts.LabelOffset = vec.V(0, -20, 0)
	if s.mm, err = physutil.NewMotionMap(r, s.ball, s.p("horizon"), int(s.p("markers")), opts); err != nil {
		return err
	}
	if s.timer, err = physutil.NewTimer(r, 140, 150, physutil.TimerOptions{}); err != nil {
		return err
	}

	s.begin()
	return nil
}

func (s *Projectile) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	f := s.g.Scale(s.ball.Mass)
	s.ball.Euler(f, dt)

	err := errors.Join(
		s.mm.UpdateQuantity(s.t, s.ball.Velocity),
		s.graph.Plot(s.t, s.ball.Position.X, s.ball.Position.Y),
		s.timer.Update(s.t),
		s.xAxis.Update(),
		s.yAxis.Update(),
	)
	s.path.Append(s.ball.Position)
	s.t += dt
	return err
}

func (s *Projectile) Done() bool {
	return s.ready && s.ball.Position.Y < 0
}

func (s *Projectile) Summary() []Stat {
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("position", "%v", s.ball.Position),
		stat("velocity", "%v", s.ball.Velocity),
		stat("markers", "%d", s.mm.Markers()),
	}
}
