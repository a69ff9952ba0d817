package shape

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Rotation is a rotation about a single world axis. Rotations are applied
// to points one after another and never multiplied together.
type Rotation struct {
	m sdf.M44
}

// RotateX returns a rotation of theta radians about the X axis.
func RotateX(theta float64) Rotation {
	return Rotation{m: sdf.RotateX(theta)}
}

// RotateY returns a rotation of theta radians about the Y axis.
func RotateY(theta float64) Rotation {
	return Rotation{m: sdf.RotateY(theta)}
}

// RotateZ returns a rotation of theta radians about the Z axis.
func RotateZ(theta float64) Rotation {
	return Rotation{m: sdf.RotateZ(theta)}
}

// Apply rotates p.
func (r Rotation) Apply(p v3.Vec) v3.Vec {
	return r.m.MulPosition(p)
}
