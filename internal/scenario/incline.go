package scenario

import (
	"errors"
	"math"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Incline slides a frictionless cart down a plane tilted about the origin.
type Incline struct {
	base

	cart     *Body
	theta    float64
	downhill vec.Vector3
	force    vec.Vector3
	crumbs   *physutil.MotionMapN
	pos      *physutil.Graph
	vel      *physutil.Graph
	accel    *physutil.Graph
	timer    *physutil.Timer
	path     render.Curve
}

func NewIncline() *Incline {
	return &Incline{base: base{
		name: "inclined_plane",
		desc: "cart sliding down a tilted plane; breadcrumb motion map, x/v/a graphs",
		dt:   0.0005,
		params: []Param{
			{"angle", 22, "incline angle (degrees)"},
			{"mass", 0.5, "cart mass (kg)"},
			{"g", 9.8, "gravitational acceleration (m/s^2)"},
			{"marker_steps", 600, "steps between breadcrumbs"},
		},
	}}
}

func (s *Incline) Setup(r render.Renderer, dt float64) error {
	s.theta = s.p("angle") * math.Pi / 180
	box(r, vec.V(5, 0, 0), vec.V(10, 0.02, 0.2), s.theta, render.Green)
	s.downhill = vec.UnitX.Rotate(s.theta, vec.UnitZ)

	start := vec.V(9.1, 0.04, 0.08).Rotate(s.theta, vec.UnitZ)
	s.cart = NewBody(start, vec.Zero, s.p("mass"), vec.V(0.2, 0.06, 0.06))
	s.cart.Draw(r, render.Blue, 6)
	s.path = trail(r, start)

	var err error
	if s.pos, err = physutil.NewGraph(r, 1, physutil.GraphOptions{Title: "position along incline"}); err != nil {
		return err
	}
	if s.vel, err = physutil.NewGraph(r, 1, physutil.GraphOptions{Title: "speed"}); err != nil {
		return err
	}
	if s.accel, err = physutil.NewGraph(r, 1, physutil.GraphOptions{Title: "acceleration"}); err != nil {
		return err
	}

	opts := physutil.DefaultMotionMapOptions()
	opts.Kind = physutil.MarkerBreadcrumbs
	s.crumbs, err = physutil.NewMotionMapN(r, s.cart, dt, int(s.p("marker_steps")), opts)
	if err != nil {
		return err
	}
	if s.timer, err = physutil.NewTimer(r, 9, 5, physutil.TimerOptions{}); err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *Incline) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.force = s.downhill.SetMag(-s.cart.Mass * s.p("g") * math.Sin(s.theta))
	s.cart.Euler(s.force, dt)

	err := errors.Join(
		s.crumbs.Update(s.t),
		s.pos.Plot(s.t, s.cart.Position.Mag()),
		s.vel.Plot(s.t, s.cart.Velocity.Mag()),
		s.accel.Plot(s.t, s.force.Mag()/s.cart.Mass),
		s.timer.Update(s.t),
	)
	s.path.Append(s.cart.Position)
	s.t += dt
	return err
}

func (s *Incline) Done() bool {
	return s.ready && s.cart.Position.Y <= 0.04
}

func (s *Incline) Summary() []Stat {
	return []Stat{
		stat("time", "%.4f s", s.t),
		stat("position", "%v", s.cart.Position),
		stat("velocity", "%v", s.cart.Velocity),
		stat("speed", "%.4f m/s", s.cart.Velocity.Mag()),
		stat("acceleration", "%.4f m/s^2", s.force.Mag()/s.cart.Mass),
	}
}
