package shape

import v3 "github.com/deadsy/sdfx/vec/v3"

// Face identifies one of the six faces of a box.
type Face int

const (
	XPos Face = iota
	XNeg
	YPos
	YNeg
	ZPos
	ZNeg
)

// faceCount is the number of Face values.
const faceCount = 6

func (f Face) String() string {
	switch f {
	case XPos:
		return "+x"
	case XNeg:
		return "-x"
	case YPos:
		return "+y"
	case YNeg:
		return "-y"
	case ZPos:
		return "+z"
	case ZNeg:
		return "-z"
	default:
		return "unknown"
	}
}

// faceColors is indexed by Face, in RGB 0..255.
var faceColors = [faceCount]v3.Vec{
	{X: 255, Y: 0, Z: 0},
	{X: 0, Y: 255, Z: 0},
	{X: 0, Y: 0, Z: 255},
	{X: 255, Y: 255, Z: 0},
	{X: 255, Y: 0, Z: 255},
	{X: 0, Y: 255, Z: 255},
}

// FaceColor returns the colour of face f after rotating the face colour
// table by offset. Two boxes sharing the table look different when given
// different offsets.
func FaceColor(f Face, offset int) v3.Vec {
	i := (int(f) + offset) % faceCount
	if i < 0 {
		i += faceCount
	}
	return faceColors[i]
}
