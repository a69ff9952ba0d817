package scene

import (
	"math"

	"github.com/chazu/asciimarch/pkg/shape"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Kind enumerates the primitive shapes a scene is built from.
type Kind int

const (
	KindSphere   Kind = iota // Center, Radius
	KindBox                  // Center, Size; coloured per face
	KindCylinder             // Center, Height, Radius; Z aligned
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Frame selects the reference frame a primitive is evaluated in.
type Frame int

const (
	FrameWorld Frame = iota // the query point as given
	FrameSpin               // rotated by -t about Y, then about X
	FrameDrift              // rotated by t/2 about Y, then about X
	frameCount
)

func (f Frame) String() string {
	switch f {
	case FrameWorld:
		return "world"
	case FrameSpin:
		return "spin"
	case FrameDrift:
		return "drift"
	default:
		return "unknown"
	}
}

// frames holds a query point expressed in every Frame.
type frames [frameCount]v3.Vec

// framesAt rotates p into each animated frame for time t. Each axis
// rotation is applied to the point in turn.
func framesAt(p v3.Vec, t float64) frames {
	return frames{
		FrameWorld: p,
		FrameSpin:  shape.RotateX(-t).Apply(shape.RotateY(-t).Apply(p)),
		FrameDrift: shape.RotateX(t / 2).Apply(shape.RotateY(t / 2).Apply(p)),
	}
}

// Primitive describes one solid of a scene.
type Primitive struct {
	Name   string
	Kind   Kind
	Frame  Frame
	Center v3.Vec
	Size   v3.Vec  // box edge lengths
	Radius float64 // sphere and cylinder
	Height float64 // cylinder

	// Color is the flat colour of spheres and cylinders. Boxes take their
	// colour from the face table instead, rotated by FaceOffset.
	Color      v3.Vec
	FaceOffset int
}

// eval returns the distance to the primitive and its colour at the
// frame-appropriate version of the query point.
func (p *Primitive) eval(f *frames) (float64, v3.Vec) {
	q := f[p.Frame]
	switch p.Kind {
	case KindSphere:
		return shape.Sphere(q, p.Center, p.Radius), p.Color
	case KindBox:
		b := shape.Box(q, p.Center, p.Size)
		return b.Distance, shape.FaceColor(b.Face, p.FaceOffset)
	case KindCylinder:
		return shape.Cylinder(q, p.Center, p.Height, p.Radius), p.Color
	default:
		return math.Inf(1), v3.Vec{}
	}
}

// reach is the distance from the origin of the point of the primitive
// farthest from it. Rotations are about the origin so this holds in every
// frame.
func (p *Primitive) reach() float64 {
	var extent float64
	switch p.Kind {
	case KindSphere:
		extent = p.Radius
	case KindBox:
		extent = p.Size.Length() / 2
	case KindCylinder:
		extent = math.Hypot(p.Radius, p.Height/2)
	}
	return p.Center.Length() + extent
}
