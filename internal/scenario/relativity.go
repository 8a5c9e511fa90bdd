package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

const speedOfLight = 3e8

// lorentz returns gamma for speed v, or an error when |v| >= c.
func lorentz(v, c float64) (float64, error) {
	beta2 := (v * v) / (c * c)
	if beta2 >= 1 {
		return 0, fmt.Errorf("%w: speed %g is not below c=%g", ErrInvalidParam, v, c)
	}
	return 1 / math.Sqrt(1-beta2), nil
}

// LengthContraction drives a car along a track at a sizeable fraction of c.
// The car is drawn contracted along each axis by that axis's Lorentz factor.
type LengthContraction struct {
	base

	car     *Body
	outline render.Curve
	axis    *physutil.Axis
	timer   *physutil.Timer
	path    render.Curve
}

func NewLengthContraction() *LengthContraction {
	return &LengthContraction{base: base{
		name: "length_contraction",
		desc: "car at relativistic speed over a track; contracted body, scientific timer",
		dt:   1e-11,
		params: []Param{
			{"speed", 2.9e7, "car speed (m/s)"},
			{"mass", 1, "car mass (kg)"},
		},
	}}
}

func (s *LengthContraction) Setup(r render.Renderer, dt float64) error {
	track := physutil.Fixed{At: vec.V(0, -1.5, 0), Extent: vec.V(10, 0.1, 0.1)}
	box(r, track.At, track.Extent, 0, render.Green)

	vel := vec.V(s.p("speed"), 0, 0)
	var gamma [3]float64
	for i, v := range []float64{vel.X, vel.Y, vel.Z} {
		g, err := lorentz(v, speedOfLight)
		if err != nil {
			return err
		}
		gamma[i] = g
	}
	size := vec.V(1/gamma[0], 1/gamma[1], 1/gamma[2])
	s.car = NewBody(vec.Zero, vel, s.p("mass"), size)
	s.outline = box(r, s.car.Position, size, 0, render.Blue)
	s.path = trail(r, s.car.Position)

	start := vec.V(-5, -2, 0)
	var err error
	if s.axis, err = physutil.NewAxis(r, track, 11, physutil.AxisOptions{StartPos: &start}); err != nil {
		return err
	}
	if s.timer, err = physutil.NewTimer(r, 4, 4.5, physutil.TimerOptions{Scientific: true}); err != nil {
		return err
	}
	s.begin()
	return nil
}

func (s *LengthContraction) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.car.Euler(vec.Zero, dt)
	s.outline.SetPoints(boxOutline(s.car.Position, s.car.Extent, 0))
	s.path.Append(s.car.Position)

	err := errors.Join(s.timer.Update(s.t), s.axis.Update())
	s.t += dt
	return err
}

func (s *LengthContraction) Done() bool {
	if !s.ready {
		return false
	}
	x := s.car.Position.X
	return x <= -4.5 || x >= 4.5
}

func (s *LengthContraction) Summary() []Stat {
	return []Stat{
		stat("time", "%.4E s", s.t),
		stat("contracted size", "%v", s.car.Extent),
	}
}

// RelativisticMomentum pushes a block with a constant force. Momentum
// grows linearly; velocity approaches c when the relativistic relation is
// used and grows without bound when it is not.
type RelativisticMomentum struct {
	base

	mom      vec.Vector3
	force    vec.Vector3
	momentum *physutil.Graph
	velocity *physutil.Graph
	v        float64
}

func NewRelativisticMomentum() *RelativisticMomentum {
	return &RelativisticMomentum{base: base{
		name: "relativistic_momentum",
		desc: "block under a constant force; momentum and velocity against the c asymptote",
		dt:   0.01,
		params: []Param{
			{"duration", 30, "simulated time (s)"},
			{"mass", 0.06, "block mass (kg)"},
			{"force", 1e6, "applied force (N)"},
			{"relativistic", 1, "1 uses p = gamma*m*v, 0 uses p = m*v"},
		},
	}}
}

func (s *RelativisticMomentum) Setup(r render.Renderer, dt float64) error {
	s.mom = vec.Zero
	s.force = vec.V(s.p("force"), 0, 0)
	var err error
	s.momentum, err = physutil.NewGraph(r, 1, physutil.GraphOptions{
		Title: "Momentum vs. time: block with constant F", XTitle: "Time (s)", YTitle: "Momentum (kg m/s)",
	})
	if err != nil {
		return err
	}
	s.velocity, err = physutil.NewGraph(r, 2, physutil.GraphOptions{
		Title: "Velocity vs. time: block with constant F", XTitle: "Time (s)", YTitle: "Velocity (m/s)",
	})
	if err != nil {
		return err
	}
	s.begin()
	s.v = s.speed()
	return errors.Join(s.momentum.Plot(0, s.mom.X), s.velocity.Plot(0, s.v, speedOfLight))
}

func (s *RelativisticMomentum) speed() float64 {
	m := s.p("mass")
	if s.p("relativistic") == 0 {
		return s.mom.X / m
	}
	ratio := s.mom.X / (m * speedOfLight)
	return s.mom.X / (m * math.Sqrt(1+ratio*ratio))
}

func (s *RelativisticMomentum) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.mom = s.mom.Add(s.force.Scale(dt))
	s.t += dt
	s.v = s.speed()
	return errors.Join(s.momentum.Plot(s.t, s.mom.X), s.velocity.Plot(s.t, s.v, speedOfLight))
}

func (s *RelativisticMomentum) Done() bool {
	return s.ready && s.t >= s.p("duration")
}

func (s *RelativisticMomentum) Summary() []Stat {
	return []Stat{
		stat("time", "%.2f s", s.t),
		stat("momentum", "%.4g kg m/s", s.mom.X),
		stat("velocity", "%.4g m/s", s.v),
		stat("v/c", "%.4f", s.v/speedOfLight),
	}
}
