package scenario

import (
	"errors"
	"math"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Launcher fires a ball from a fixed launcher, raising the launch angle by
// a fixed increment after every miss until a shot lands within tolerance
// of the target range.
type Launcher struct {
	base

	ball  *Body
	angle float64
	shots int
	hit   bool
	xAxis *physutil.Axis
	yAxis *physutil.Axis
	graph *physutil.Graph
	timer *physutil.Timer
	path  render.Curve
	shotT float64
}

func NewLauncher() *Launcher {
	return &Launcher{base: base{
		name: "launcher",
		desc: "projectile launcher searching for the angle that hits a target range",
		dt:   0.001,
		params: []Param{
			{"speed", 4.1, "launch speed (m/s)"},
			{"angle", 20, "starting angle before the first increment (degrees)"},
			{"increment", 2, "angle increment between shots (degrees)"},
			{"target", 1.75, "target range (m)"},
			{"tolerance", 0.04, "accepted distance from the target (m)"},
			{"height", 1.17, "launch height (m)"},
			{"mass", 0.6, "ball mass (kg)"},
		},
	}}
}

func (s *Launcher) Setup(r render.Renderer, dt float64) error {
	field := physutil.Fixed{At: vec.V(1.5, 0, 0), Extent: vec.V(3, 0.1, 1)}
	box(r, field.At, field.Extent, 0, render.Green)

	s.ball = NewBody(vec.Zero, vec.Zero, s.p("mass"), vec.V(0.1, 0.1, 0.1))
	s.ball.Draw(r, render.Blue, 6)
	s.angle = s.p("angle")
	s.shots = 0
	s.hit = false
	s.reload()
	s.path = trail(r, s.ball.Position)

	var err error
	if s.xAxis, err = physutil.NewAxis(r, field, 10, physutil.AxisOptions{Length: 4.5}); err != nil {
		return err
	}
	yStart := vec.Zero
	s.yAxis, err = physutil.NewAxis(r, field, 5, physutil.AxisOptions{
		Kind:        physutil.AxisY,
		Orientation: physutil.LabelLeft,
		StartPos:    &yStart,
		Length:      1,
	})
	if err != nil {
		return err
	}
	if s.graph, err = physutil.NewGraph(r, 1, physutil.GraphOptions{Title: "trajectory", XTitle: "x (m)", YTitle: "y (m)"}); err != nil {
		return err
	}
	if s.timer, err = physutil.NewTimer(r, 2, 1.5, physutil.TimerOptions{}); err != nil {
		return err
	}
	s.begin()
	return nil
}

// reload puts the ball back on the launcher at the next angle.
func (s *Launcher) reload() {
	s.angle += s.p("increment")
	s.shots++
	s.shotT = 0
	rad := s.angle * math.Pi / 180
	v := s.p("speed")
	s.ball.Position = vec.V(0, s.p("height"), 0)
	s.ball.Velocity = vec.V(v*math.Cos(rad), v*math.Sin(rad), 0)
	s.ball.sync()
}

func (s *Launcher) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	s.ball.Euler(vec.V(0, -9.8*s.ball.Mass, 0), dt)

	err := errors.Join(
		s.graph.Plot(s.ball.Position.X, s.ball.Position.Y),
		s.timer.Update(s.shotT),
	)
	s.path.Append(s.ball.Position)
	s.shotT += dt
	s.t += dt

	if s.ball.Position.Y < 0 {
		miss := math.Abs(s.ball.Position.X - s.p("target"))
		if miss <= s.p("tolerance") {
			s.hit = true
		} else if s.angle+s.p("increment") < 90 {
			s.reload()
		}
	}
	return err
}

// Done reports a hit, or a miss with no angle left to try.
func (s *Launcher) Done() bool {
	if !s.ready {
		return false
	}
	return s.hit || s.ball.Position.Y < 0
}

func (s *Launcher) Summary() []Stat {
	return []Stat{
		stat("shots", "%d", s.shots),
		stat("angle", "%.1f deg", s.angle),
		stat("hit", "%t", s.hit),
		stat("landing", "%v", s.ball.Position),
		stat("flight time", "%.3f s", s.shotT),
	}
}
