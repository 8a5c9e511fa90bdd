package viz

import (
	"math"

	"github.com/san-kum/physlab/internal/vec"
)

// Camera maps world coordinates onto canvas pixels. Fit frames a bounding
// box; rotation turns the scene about its centre before projecting onto
// the xy plane, so the default view looks down the z axis.
type Camera struct {
	Center     vec.Vector3
	Scale      float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Scale: 1, Zoom: 1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) Reset() {
	c.RotX, c.RotY, c.Zoom = 0, 0, 1
}

// Fit centres the box [lo, hi] and picks a scale that leaves a small margin
// on a sw x sh pixel canvas. Terminal pixels are roughly square in Braille,
// so one scale serves both axes.
func (c *Camera) Fit(lo, hi vec.Vector3, sw, sh int) {
	c.Center = lo.Add(hi).Scale(0.5)
	w, h := hi.X-lo.X, hi.Y-lo.Y
	sx, sy := math.Inf(1), math.Inf(1)
	if w > 0 {
		sx = float64(sw) * 0.9 / w
	}
	if h > 0 {
		sy = float64(sh) * 0.9 / h
	}
	c.Scale = math.Min(sx, sy)
	if math.IsInf(c.Scale, 1) {
		c.Scale = 1
	}
}

// RotatePoint rotates p about the camera centre.
func (c *Camera) RotatePoint(p vec.Vector3) vec.Vector3 {
	p = p.Sub(c.Center)
	if c.RotX != 0 {
		p = p.Rotate(c.RotX, vec.UnitX)
	}
	if c.RotY != 0 {
		p = p.Rotate(c.RotY, vec.UnitY)
	}
	return p
}

// Project returns pixel coordinates for p and whether they fall on the
// canvas. Screen y grows downwards.
func (c *Camera) Project(p vec.Vector3, sw, sh int) (int, int, bool) {
	rot := c.RotatePoint(p).Scale(c.Scale * c.Zoom)
	sx := int(math.Round(rot.X)) + sw/2
	sy := int(math.Round(-rot.Y)) + sh/2
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
