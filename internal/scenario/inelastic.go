package scenario

import (
	"errors"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Inelastic rolls two balls toward the origin. When they touch they stick
// together and move off with the combined momentum.
type Inelastic struct {
	base

	a, b   *Body
	radius float64
	mapA   *physutil.MotionMap
	mapB   *physutil.MotionMap
	timer  *physutil.Timer
	stuck  bool
	before vec.Vector3
}

func NewInelastic() *Inelastic {
	return &Inelastic{base: base{
		name: "inelastic",
		desc: "two balls colliding and sticking; momentum motion maps",
		dt:   0.001,
		params: []Param{
			{"mass1", 0.5, "first ball mass (kg)"},
			{"mass2", 2, "second ball mass (kg)"},
			{"speed1", 0.5, "first ball speed (m/s)"},
			{"speed2", 0.3, "second ball speed (m/s)"},
			{"bound", 2, "distance from the origin that ends the run (m)"},
		},
	}}
}

func (s *Inelastic) Setup(r render.Renderer, dt float64) error {
	s.radius = 0.1
	ext := vec.V(2*s.radius, 2*s.radius, 2*s.radius)

	p1, p2 := vec.V(-1, 1, 0), vec.V(-0.7, -0.5, 0)
	s.a = NewBody(p1, p1.Neg().SetMag(s.p("speed1")), s.p("mass1"), ext)
	s.b = NewBody(p2, p2.Neg().SetMag(s.p("speed2")), s.p("mass2"), ext)
	s.a.Draw(r, render.Green, 8)
	s.b.Draw(r, render.Blue, 8)
	s.before = s.a.Momentum().Add(s.b.Momentum())
	s.stuck = false

	opts := physutil.DefaultMotionMapOptions()
	opts.LabelOrder = false
	var err error
	if s.mapA, err = physutil.NewMotionMap(r, s.a, 10, 10, opts); err != nil {
		return err
	}
	if s.mapB, err = physutil.NewMotionMap(r, s.b, 10, 10, opts); err != nil {
		return err
	}
	if s.timer, err = physutil.NewTimer(r, 1, 1, physutil.TimerOptions{}); err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *Inelastic) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.a.Euler(vec.Zero, dt)
	s.b.Euler(vec.Zero, dt)

	// contact when the centres are closer than one radius
	if s.a.Position.Distance(s.b.Position) < (s.radius+s.radius)/2 {
		v := s.a.Momentum().Add(s.b.Momentum()).Div(s.a.Mass + s.b.Mass)
		s.a.Velocity, s.b.Velocity = v, v
		s.stuck = true
	}

	err := errors.Join(
		s.mapA.UpdateQuantity(s.t, s.a.Momentum()),
		s.mapB.UpdateQuantity(s.t, s.b.Momentum()),
		s.timer.Update(s.t),
	)
	s.t += dt
	return err
}

func (s *Inelastic) Done() bool {
	bound := s.p("bound")
	return s.ready && (s.a.Position.Mag() >= bound || s.b.Position.Mag() >= bound)
}

func (s *Inelastic) Summary() []Stat {
	after := s.a.Momentum().Add(s.b.Momentum())
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("stuck together", "%t", s.stuck),
		stat("momentum before", "%v", s.before),
		stat("momentum after", "%v", after),
	}
}
