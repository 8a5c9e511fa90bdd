package scenario

import (
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

// Body is the simulation state of one object. It satisfies
// physutil.TrackedObject; the drawn marker is kept separate from the state.
type Body struct {
	Position vec.Vector3
	Velocity vec.Vector3
	Mass     float64
	Extent   vec.Vector3

	marker render.Point
}

func NewBody(pos, vel vec.Vector3, mass float64, extent vec.Vector3) *Body {
	return &Body{Position: pos, Velocity: vel, Mass: mass, Extent: extent}
}

func (b *Body) Pos() vec.Vector3  { return b.Position }
func (b *Body) Size() vec.Vector3 { return b.Extent }

// Euler advances the body one explicit Euler step under force f:
// velocity first, then position with the new velocity.
func (b *Body) Euler(f vec.Vector3, dt float64) {
	b.Velocity = b.Velocity.Add(f.Div(b.Mass).Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.sync()
}

func (b *Body) Momentum() vec.Vector3 { return b.Velocity.Scale(b.Mass) }

func (b *Body) KineticEnergy() float64 { return 0.5 * b.Mass * b.Velocity.Mag2() }

// Draw adds a marker for the body that follows it on every Euler step.
func (b *Body) Draw(r render.Renderer, c render.Color, size float64) {
	b.marker = r.NewPoint(render.PointSpec{Pos: b.Position, Size: size, Color: c})
}

// Marker returns the drawn marker, or nil before Draw.
func (b *Body) Marker() render.Point { return b.marker }

func (b *Body) sync() {
	if b.marker != nil {
		b.marker.SetPos(b.Position)
	}
}

// box draws the outline of an axis-aligned box's xy face, rotated by angle
// about the z axis through the origin.
func box(r render.Renderer, center, size vec.Vector3, angle float64, c render.Color) render.Curve {
	return r.NewCurve(render.CurveSpec{Points: boxOutline(center, size, angle), Color: c})
}

func boxOutline(center, size vec.Vector3, angle float64) []vec.Vector3 {
	hx, hy := size.X/2, size.Y/2
	pts := []vec.Vector3{
		center.Add(vec.V(-hx, -hy, 0)),
		center.Add(vec.V(hx, -hy, 0)),
		center.Add(vec.V(hx, hy, 0)),
		center.Add(vec.V(-hx, hy, 0)),
		center.Add(vec.V(-hx, -hy, 0)),
	}
	if angle != 0 {
		for i := range pts {
			pts[i] = pts[i].Rotate(angle, vec.UnitZ)
		}
	}
	return pts
}

func trail(r render.Renderer, start vec.Vector3) render.Curve {
	return r.NewCurve(render.CurveSpec{Points: []vec.Vector3{start}, Color: render.Yellow})
}
