package shape

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// BoxDistance is the result of evaluating a box: the signed distance and
// the face the query point is nearest to.
type BoxDistance struct {
	Distance float64
	Face     Face
}

// Sphere returns the exact signed distance from p to a sphere.
func Sphere(p, center v3.Vec, radius float64) float64 {
	return p.Sub(center).Length() - radius
}

// Box returns the signed distance from p to an axis-aligned box with the
// given edge lengths, and the face nearest to p.
//
// The offset is taken between absolute values, so the box is mirrored
// through every axis plane. Only boxes centred at the origin are exact.
//
// The nearest face is the axis whose offset is strictly greater than the
// other two, tested x then y; anything else (including every tie) resolves
// to the z axis. The positive face is chosen when the query coordinate on
// that axis is > 0.
func Box(p, center, size v3.Vec) BoxDistance {
	d := p.Abs().Sub(center.Abs()).Sub(size.DivScalar(2))

	inside := min(d.MaxComponent(), 0)
	outside := d.Max(v3.Vec{}).Length()

	return BoxDistance{
		Distance: inside + outside,
		Face:     nearestFace(p, d),
	}
}

func nearestFace(p, d v3.Vec) Face {
	switch {
	case d.X > d.Y && d.X > d.Z:
		if p.X > 0 {
			return XPos
		}
		return XNeg
	case d.Y > d.X && d.Y > d.Z:
		if p.Y > 0 {
			return YPos
		}
		return YNeg
	default:
		if p.Z > 0 {
			return ZPos
		}
		return ZNeg
	}
}

// Cylinder returns the signed distance from p to a Z-aligned capped
// cylinder of the given total height and radius.
func Cylinder(p, center v3.Vec, height, radius float64) float64 {
	radial := v2.Vec{X: p.X - center.X, Y: p.Y - center.Y}.Length() - radius
	axial := abs(p.Z-center.Z) - height/2

	inside := min(max(radial, axial), 0)
	outside := v2.Vec{X: radial, Y: axial}.Max(v2.Vec{}).Length()
	return inside + outside
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
