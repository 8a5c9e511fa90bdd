package scenario

import (
	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Buoyancy releases a block inside a tank of fluid. Linear drag damps the
// motion until it floats.
type Buoyancy struct {
	base

	fluidCenter vec.Vector3
	fluidSize   vec.Vector3
	block       *Body
	outline     render.Curve
	forces      *physutil.Graph
	buoyant     float64
	weight      float64
}

func NewBuoyancy() *Buoyancy {
	return &Buoyancy{base: base{
		name: "buoyancy",
		desc: "block released in a fluid with drag; buoyant and gravitational force graph",
		dt:   0.001,
		params: []Param{
			{"duration", 20, "simulated time limit (s)"},
			{"fluid_density", 1000, "fluid density (kg/m^3)"},
			{"density", 500, "block density (kg/m^3)"},
			{"drag", -5, "linear drag coefficient (N s/m)"},
			{"g", 9.8, "gravitational acceleration (m/s^2)"},
		},
	}}
}

func (s *Buoyancy) Setup(r render.Renderer, dt float64) error {
	s.fluidCenter = vec.Zero
	s.fluidSize = vec.V(2, 2, 0.2)
	box(r, s.fluidCenter, s.fluidSize, 0, render.Blue)

	size := vec.V(0.4, 0.4, 0.1)
	mass := s.p("density") * size.X * size.Y * size.Z
	s.block = NewBody(vec.Zero, vec.Zero, mass, size)
	s.outline = box(r, s.block.Position, size, 0, render.Red)

	var err error
	s.forces, err = physutil.NewGraph(r, 2, physutil.GraphOptions{Title: "buoyant and gravitational force", YTitle: "N"})
	if err != nil {
		return err
	}
	s.begin()
	return nil
}

// submerged returns the volume of the block below the fluid surface.
func (s *Buoyancy) submerged() float64 {
	top := s.fluidCenter.Y + s.fluidSize.Y/2
	size := s.block.Extent
	blockTop := s.block.Position.Y + size.Y/2
	blockBottom := s.block.Position.Y - size.Y/2

	var h float64
	switch {
	case blockTop <= top:
		h = size.Y
	case blockBottom >= top:
		h = 0
	default:
		h = top - blockBottom
	}
	return size.X * h * size.Z
}

func (s *Buoyancy) Step(dt float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	g := -s.p("g")
	s.buoyant = s.p("fluid_density") * -g * s.submerged()
	s.weight = s.block.Mass * g
	drag := s.p("drag") * s.block.Velocity.Y

	s.block.Euler(vec.V(0, s.buoyant+s.weight+drag, 0), dt)
	s.outline.SetPoints(boxOutline(s.block.Position, s.block.Extent, 0))

	err := s.forces.Plot(s.t, s.buoyant, s.weight)
	s.t += dt
	return err
}

func (s *Buoyancy) Done() bool {
	if !s.ready {
		return false
	}
	bottom := s.fluidCenter.Y - s.fluidSize.Y/2
	return s.t >= s.p("duration") || s.block.Position.Y <= bottom
}

func (s *Buoyancy) Summary() []Stat {
	return []Stat{
		stat("time", "%.3f s", s.t),
		stat("height", "%.4f m", s.block.Position.Y),
		stat("buoyant force", "%.3f N", s.buoyant),
		stat("gravity", "%.3f N", s.weight),
	}
}
