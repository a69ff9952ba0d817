// Package march implements sphere tracing: a ray advances by the field
// distance at its current position until it enters a surface or runs out
// of steps.
package march

import (
	"github.com/chazu/asciimarch/pkg/scene"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Ray is a half-line being marched. It lives for a single pixel.
type Ray struct {
	Origin    v3.Vec
	Direction v3.Vec
}

// Step moves the ray origin by d along its direction.
func (r *Ray) Step(d float64) {
	r.Origin = r.Origin.Add(r.Direction.MulScalar(d))
}

// Result is the outcome of marching one ray.
type Result struct {
	// Depth is the sum of every step taken. It is not clamped.
	Depth float64
	// Color is the colour carried by the last field evaluation, whether or
	// not a surface was reached.
	Color v3.Vec
	// Steps is the number of field evaluations performed.
	Steps int
	// Hit reports whether the ray ended inside a surface.
	Hit bool
}

// March traces r through f at time t for at most maxSteps evaluations.
// A negative field distance ends the march as a hit; otherwise the ray
// advances by the distance and the distance is added to the depth.
//
// There is no maxDepth parameter: depth is never bounded while marching.
// Callers compare the returned Depth against their own maximum, as
// classify.Glyph does.
func March(f scene.Field, r Ray, t float64, maxSteps int) Result {
	var res Result
	for res.Steps < maxSteps {
		s := f.Evaluate(r.Origin, t)
		res.Steps++
		res.Color = s.Color
		if s.Distance < 0 {
			res.Hit = true
			break
		}
		res.Depth += s.Distance
		r.Step(s.Distance)
	}
	return res
}
