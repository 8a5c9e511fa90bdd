// Package vec provides the three-component vector used for positions,
// velocities, forces and marker geometry throughout physlab.
package vec

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFinite indicates a vector with a NaN or infinite component.
var ErrNotFinite = errors.New("vec: non-finite component")

type Vector3 struct {
	X, Y, Z float64
}

// V is shorthand for Vector3{x, y, z}.
func V(x, y, z float64) Vector3 { return Vector3{x, y, z} }

var (
	Zero  = Vector3{}
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

func (v Vector3) Add(o Vector3) Vector3      { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3      { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Div(s float64) Vector3      { return Vector3{v.X / s, v.Y / s, v.Z / s} }
func (v Vector3) Mul(o Vector3) Vector3      { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) Neg() Vector3               { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Dot(o Vector3) float64      { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Mag2() float64              { return v.Dot(v) }
func (v Vector3) Mag() float64               { return math.Sqrt(v.Mag2()) }
func (v Vector3) Equal(o Vector3) bool       { return v == o }
func (v Vector3) Distance(o Vector3) float64 { return v.Sub(o).Mag() }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Norm returns the unit vector in the direction of v, or the zero vector.
func (v Vector3) Norm() Vector3 {
	if m := v.Mag(); m != 0 {
		return v.Scale(1 / m)
	}
	return Vector3{}
}

// SetMag returns a vector with v's direction and magnitude m.
// The zero vector has no direction and stays zero.
func (v Vector3) SetMag(m float64) Vector3 {
	return v.Norm().Scale(m)
}

// Rotate rotates v by angle radians about axis (Rodrigues' formula).
func (v Vector3) Rotate(angle float64, axis Vector3) Vector3 {
	k := axis.Norm()
	if k == (Vector3{}) {
		return v
	}
	sin, cos := math.Sincos(angle)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// ApproxEqual reports whether every component of v and o differs by at most tol.
func (v Vector3) ApproxEqual(o Vector3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Validate returns ErrNotFinite if any component is NaN or infinite.
func (v Vector3) Validate() error {
	if !v.IsFinite() {
		return fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	return nil
}

func (v Vector3) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}
