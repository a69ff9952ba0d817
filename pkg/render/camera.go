package render

import (
	"github.com/chazu/asciimarch/pkg/march"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Camera is a viewpoint: where rays start and the base direction they are
// offset from.
type Camera struct {
	Position  v3.Vec
	Direction v3.Vec
}

// Move returns the camera translated by d.
func (c Camera) Move(d v3.Vec) Camera {
	c.Position = c.Position.Add(d)
	return c
}

// Turn returns the camera with d added to its direction and the result
// renormalised. A change that would zero the direction is ignored.
func (c Camera) Turn(d v3.Vec) Camera {
	dir := c.Direction.Add(d)
	if dir.Length() == 0 {
		return c
	}
	c.Direction = dir.Normalize()
	return c
}

// PixelRay returns the ray for a cell of a cols×rows grid. The cell offset
// spans [-0.5, 0.5) on each axis and is added to the camera direction
// without renormalising, so rays toward the edges are slightly longer.
func PixelRay(c Camera, col, row, cols, rows int) march.Ray {
	offset := v3.Vec{
		X: float64(col)/float64(cols) - 0.5,
		Y: float64(row)/float64(rows) - 0.5,
	}
	return march.Ray{
		Origin:    c.Position,
		Direction: c.Direction.Add(offset),
	}
}
