package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Circular swings a ball on a string in the xy plane for one period. The
// net force is m(w x v), the string rotates with the ball.
type Circular struct {
	base

	ball  *Body
	omega vec.Vector3
	arm   vec.Vector3
	cord  render.Curve
	vMap  *physutil.MotionMap
	aMap  *physutil.MotionMap
	path  render.Curve
	force vec.Vector3
}

func NewCircular() *Circular {
	return &Circular{base: base{
		name: "circular",
		desc: "ball on a string; velocity and acceleration motion maps",
		dt:   0.001,
		params: []Param{
			{"period", 1, "period of revolution (s)"},
			{"mass", 0.1, "ball mass (kg)"},
			{"radius", 1, "string length (m)"},
		},
	}}
}

func (s *Circular) Setup(r render.Renderer, dt float64) error {
	period := s.p("period")
	if period <= 0 {
		return fmt.Errorf("%w: period must be positive", ErrInvalidParam)
	}
	s.arm = vec.V(s.p("radius"), 0, 0)
	s.omega = vec.V(0, 0, 2*math.Pi/period)
	s.cord = r.NewCurve(render.CurveSpec{Points: []vec.Vector3{vec.Zero, s.arm}, Color: render.Green})

	s.ball = NewBody(s.arm, s.omega.Cross(s.arm), s.p("mass"), vec.V(0.2, 0.2, 0.2))
	s.ball.Draw(r, render.Blue, 8)
	s.path = trail(r, s.ball.Position)

	opts := physutil.DefaultMotionMapOptions()
	opts.LabelOrder = false
	opts.Scale = 0.1
	var err error
	if s.vMap, err = physutil.NewMotionMap(r, s.ball, period, 10, opts); err != nil {
		return err
	}
	opts.Scale = 0.01
	opts.Color = render.Orange
	if s.aMap, err = physutil.NewMotionMap(r, s.ball, period, 10, opts); err != nil {
		return err
	}

	s.begin()
	return nil
}

func (s *Circular) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.force = s.omega.Cross(s.ball.Velocity).Scale(s.ball.Mass)
	s.ball.Euler(s.force, dt)
	s.arm = s.arm.Rotate(s.omega.Mag()*dt, vec.UnitZ)
	s.cord.SetPoints([]vec.Vector3{vec.Zero, s.arm})
	s.path.Append(s.ball.Position)

	err := errors.Join(
		s.vMap.UpdateQuantity(s.t, s.ball.Velocity),
		s.aMap.UpdateQuantity(s.t, s.force.Div(s.ball.Mass)),
	)
	s.t += dt
	return err
}

func (s *Circular) Done() bool {
	return s.ready && s.t >= s.p("period")
}

func (s *Circular) Summary() []Stat {
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("net force", "%v", s.force),
		stat("radius drift", "%.4f m", s.ball.Position.Mag()-s.p("radius")),
	}
}
