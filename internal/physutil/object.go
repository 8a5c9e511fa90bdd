package physutil

import "github.com/san-kum/physlab/internal/vec"

// TrackedObject is the read-only view of a simulated body the helpers need:
// where it is and how big it is. Size is the full extent along each axis.
type TrackedObject interface {
	Pos() vec.Vector3
	Size() vec.Vector3
}

// Fixed is a TrackedObject that never moves, for anchoring an axis or a
// motion map to a point in the scene.
type Fixed struct {
	At     vec.Vector3
	Extent vec.Vector3
}

func (f Fixed) Pos() vec.Vector3  { return f.At }
func (f Fixed) Size() vec.Vector3 { return f.Extent }
