package scenario

import (
	"errors"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// SHM is a mass on a horizontal spring anchored at x = -L0.
type SHM struct {
	base

	mass    *Body
	anchor  vec.Vector3
	length  float64
	coil    render.Curve
	axis    *physutil.Axis
	energy  *physutil.Graph
	motion  *physutil.Graph
	ke, epe float64
}

func NewSHM() *SHM {
	return &SHM{base: base{
		name: "shm",
		desc: "mass on a horizontal spring; energy and motion graphs",
		dt:   0.001,
		params: []Param{
			{"duration", 5, "simulated time (s)"},
			{"mass", 0.5, "mass (kg)"},
			{"k", 2, "spring constant (N/m)"},
			{"v0", 1, "initial velocity (m/s)"},
			{"rest_length", 1, "unstretched spring length (m)"},
		},
	}}
}

func (s *SHM) Setup(r render.Renderer, dt float64) error {
	l0 := s.p("rest_length")
	s.anchor = vec.V(-l0, 0, 0)
	s.length = l0
	s.coil = r.NewCurve(render.CurveSpec{Points: []vec.Vector3{s.anchor, vec.Zero}, Color: render.Green})

	s.mass = NewBody(vec.Zero, vec.V(s.p("v0"), 0, 0), s.p("mass"), vec.V(0.4, 0.4, 0.4))
	s.mass.Draw(r, render.Blue, 10)

	spring := physutil.Fixed{At: s.anchor, Extent: vec.V(l0, 0.2, 0.2)}
	start := vec.V(-l0, -0.5, 0)
	var err error
	s.axis, err = physutil.NewAxis(r, spring, 11, physutil.AxisOptions{StartPos: &start, Length: 2})
	if err != nil {
		return err
	}
	if s.energy, err = physutil.NewGraph(r, 3, physutil.GraphOptions{Title: "KE, EPE, total"}); err != nil {
		return err
	}
	if s.motion, err = physutil.NewGraph(r, 3, physutil.GraphOptions{Title: "x, v, a"}); err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *SHM) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	l0, k := s.p("rest_length"), s.p("k")
	disp := s.length - l0
	f := vec.V(-k*disp, 0, 0)

	s.mass.Euler(f, dt)
	s.length = l0 + s.mass.Position.X
	s.coil.SetPoints([]vec.Vector3{s.anchor, s.mass.Position})

	s.ke = s.mass.KineticEnergy()
	s.epe = 0.5 * k * disp * disp
	err := errors.Join(
		s.energy.Plot(s.t, s.ke, s.epe, s.ke+s.epe),
		s.motion.Plot(s.t, s.mass.Position.X, s.mass.Velocity.X, f.X/s.mass.Mass),
		s.axis.Update(),
	)
	s.t += dt
	return err
}

func (s *SHM) Done() bool {
	return s.ready && s.t >= s.p("duration")
}

func (s *SHM) Summary() []Stat {
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("position", "%.4f m", s.mass.Position.X),
		stat("total energy", "%.5f J", s.ke+s.epe),
	}
}

// SpringEnergy hangs a mass from a vertical spring and tracks kinetic,
// gravitational and elastic energy.
type SpringEnergy struct {
	base

	mass   *Body
	length float64
	coil   render.Curve
	axis   *physutil.Axis
	energy *physutil.Graph
	total  float64
}

func NewSpringEnergy() *SpringEnergy {
	return &SpringEnergy{base: base{
		name: "spring_energy",
		desc: "mass on a vertical spring; kinetic, gravitational and elastic energy",
		dt:   0.001,
		params: []Param{
			{"duration", 2, "simulated time (s)"},
			{"mass", 0.5, "mass (kg)"},
			{"k", 15, "spring constant (N/m)"},
			{"g", 9.8, "gravitational acceleration (m/s^2)"},
			{"rest_length", 1, "unstretched spring length (m)"},
		},
	}}
}

func (s *SpringEnergy) Setup(r render.Renderer, dt float64) error {
	l0 := s.p("rest_length")
	s.length = l0
	s.mass = NewBody(vec.V(0, l0, 0), vec.Zero, s.p("mass"), vec.V(0.4, 0.4, 0.4))
	s.mass.Draw(r, render.Blue, 10)
	s.coil = r.NewCurve(render.CurveSpec{Points: []vec.Vector3{vec.Zero, s.mass.Position}, Color: render.Green})

	spring := physutil.Fixed{At: vec.Zero, Extent: vec.V(0.2, l0, 0.2)}
	start := vec.V(-0.5, 0, 0)
	var err error
	s.axis, err = physutil.NewAxis(r, spring, 10, physutil.AxisOptions{
		Kind:        physutil.AxisY,
		Orientation: physutil.LabelLeft,
		StartPos:    &start,
		Length:      2,
	})
	if err != nil {
		return err
	}
	if s.energy, err = physutil.NewGraph(r, 4, physutil.GraphOptions{Title: "KE, GPE, EPE, total"}); err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *SpringEnergy) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	l0, k, g := s.p("rest_length"), s.p("k"), -s.p("g")
	disp := s.length - l0
	f := vec.V(0, -k*disp+s.mass.Mass*g, 0)

	s.mass.Euler(f, dt)
	s.length = s.mass.Position.Y
	s.coil.SetPoints([]vec.Vector3{vec.Zero, s.mass.Position})

	ke := s.mass.KineticEnergy()
	gpe := s.mass.Mass * -g * s.mass.Position.Y
	epe := 0.5 * k * disp * disp
	s.total = ke + gpe + epe
	err := errors.Join(
		s.energy.Plot(s.t, ke, gpe, epe, s.total),
		s.axis.Update(),
	)
	s.t += dt
	return err
}

func (s *SpringEnergy) Done() bool {
	return s.ready && s.t >= s.p("duration")
}

func (s *SpringEnergy) Summary() []Stat {
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("height", "%.4f m", s.mass.Position.Y),
		stat("total energy", "%.5f J", s.total),
	}
}
