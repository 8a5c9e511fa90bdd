package scenario

import (
	"errors"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// gravity returns the Newtonian pull on a body at pos from mass m at
// source. The magnitude is G*m1*m2/r^2, pointing at source.
func gravity(g, m1, m2 float64, pos, source vec.Vector3) vec.Vector3 {
	r := source.Sub(pos)
	return r.SetMag(g * m1 * m2 / r.Mag2())
}

// Satellite puts a satellite into a near-geostationary orbit around the
// earth.
type Satellite struct {
	base

	earth     vec.Vector3
	satellite *Body
	vMap      *physutil.MotionMap
	aMap      *physutil.MotionMap
	path      render.Curve
	force     vec.Vector3
}

func NewSatellite() *Satellite {
	return &Satellite{base: base{
		name: "satellite",
		desc: "satellite orbiting the earth; velocity and acceleration motion maps",
		dt:   360,
		params: []Param{
			{"duration", 100000, "simulated time (s)"},
			{"earth_mass", 5.972e24, "mass of the earth (kg)"},
			{"mass", 1000, "satellite mass (kg)"},
			{"r0", 4.23e7, "initial orbital radius (m)"},
			{"v0", 3.07e3, "initial tangential speed (m/s)"},
			{"G", 6.673e-11, "gravitational constant"},
		},
	}}
}

func (s *Satellite) Setup(r render.Renderer, dt float64) error {
	s.earth = vec.Zero
	r.NewPoint(render.PointSpec{Pos: s.earth, Size: 20, Color: render.Blue})

	s.satellite = NewBody(vec.V(s.p("r0"), 0, 0), vec.V(0, s.p("v0"), 0), s.p("mass"), vec.V(20, 20, 20))
	s.satellite.Draw(r, render.Green, 6)
	s.path = trail(r, s.satellite.Position)

	var err error
	s.vMap, s.aMap, err = velocityAccelMaps(r, s.satellite, s.p("duration"), 5e3, 5e7)
	if err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *Satellite) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.force = gravity(s.p("G"), s.satellite.Mass, s.p("earth_mass"), s.satellite.Position, s.earth)
	s.satellite.Euler(s.force, dt)
	s.path.Append(s.satellite.Position)

	err := errors.Join(
		s.vMap.UpdateQuantity(s.t, s.satellite.Velocity),
		s.aMap.UpdateQuantity(s.t, s.force.Div(s.satellite.Mass)),
	)
	s.t += dt
	return err
}

func (s *Satellite) Done() bool {
	return s.ready && s.t >= s.p("duration")
}

func (s *Satellite) Summary() []Stat {
	return []Stat{
		stat("time", "%.0f s", s.t),
		stat("velocity", "%v", s.satellite.Velocity),
		stat("acceleration", "%v", s.force.Div(s.satellite.Mass)),
		stat("radius", "%.4g m", s.satellite.Position.Mag()),
	}
}

// Binary sends a satellite through the field of two earth-mass bodies.
type Binary struct {
	base

	earths    [2]vec.Vector3
	satellite *Body
	vMap      *physutil.MotionMap
	aMap      *physutil.MotionMap
	path      render.Curve
	force     vec.Vector3
}

func NewBinary() *Binary {
	return &Binary{base: base{
		name: "binary",
		desc: "satellite moving between two fixed earth-mass bodies",
		dt:   36,
		params: []Param{
			{"duration", 5000000, "simulated time (s)"},
			{"earth_mass", 5.972e24, "mass of each body (kg)"},
			{"mass", 1000, "satellite mass (kg)"},
			{"separation", 2 * 4.23e7, "distance between the two bodies (m)"},
			{"G", 6.673e-11, "gravitational constant"},
		},
	}}
}

func (s *Binary) Setup(r render.Renderer, dt float64) error {
	const unit = 4.23e7
	s.earths = [2]vec.Vector3{vec.Zero, vec.V(s.p("separation"), 0, 0)}
	for _, e := range s.earths {
		r.NewPoint(render.PointSpec{Pos: e, Size: 20, Color: render.Blue})
	}

	s.satellite = NewBody(vec.V(5*unit, 3*unit, 0), vec.V(0, -0.4*3.07e3, 0), s.p("mass"), vec.V(1.2e7, 1.2e7, 1.2e7))
	s.satellite.Draw(r, render.Green, 8)
	s.path = trail(r, s.satellite.Position)

	var err error
	s.vMap, s.aMap, err = velocityAccelMaps(r, s.satellite, 100000, 5e3, 5e7)
	if err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *Binary) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	G, M := s.p("G"), s.p("earth_mass")
	s.force = gravity(G, s.satellite.Mass, M, s.satellite.Position, s.earths[0]).
		Add(gravity(G, s.satellite.Mass, M, s.satellite.Position, s.earths[1]))
	s.satellite.Euler(s.force, dt)
	s.path.Append(s.satellite.Position)

	err := errors.Join(
		s.vMap.UpdateQuantity(s.t, s.satellite.Velocity),
		s.aMap.UpdateQuantity(s.t, s.force.Div(s.satellite.Mass)),
	)
	s.t += dt
	return err
}

func (s *Binary) Done() bool {
	return s.ready && s.t >= s.p("duration")
}

func (s *Binary) Summary() []Stat {
	return []Stat{
		stat("time", "%.0f s", s.t),
		stat("velocity", "%v", s.satellite.Velocity),
		stat("acceleration", "%v", s.force.Div(s.satellite.Mass)),
	}
}

func velocityAccelMaps(r render.Renderer, b *Body, horizon, vScale, aScale float64) (*physutil.MotionMap, *physutil.MotionMap, error) {
	opts := physutil.DefaultMotionMapOptions()
	opts.LabelOrder = false
	opts.Scale = vScale
	v, err := physutil.NewMotionMap(r, b, horizon, 10, opts)
	if err != nil {
		return nil, nil, err
	}
	opts.Scale = aScale
	opts.Color = render.Orange
	a, err := physutil.NewMotionMap(r, b, horizon, 10, opts)
	if err != nil {
		return nil, nil, err
	}
	return v, a, nil
}
