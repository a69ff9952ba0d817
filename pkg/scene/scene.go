package scene

import (
	"github.com/chazu/asciimarch/pkg/shape"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Scene is a hollowed, drilled box with a smaller box turning inside it and
// two marker spheres. Each role is filled by one primitive; the way roles
// combine is fixed by Evaluate.
type Scene struct {
	Core    Primitive   // outer box
	Hollow  Primitive   // carved out of Core
	Axle    Primitive   // shows only where it is inside Core
	Inner   Primitive   // box seen through the hollow
	Accents []Primitive // unioned last, in order
}

// Default returns the demo scene.
func Default() *Scene {
	return &Scene{
		Core: Primitive{
			Name:  "core",
			Kind:  KindBox,
			Frame: FrameSpin,
			Size:  v3.Vec{X: 2, Y: 2, Z: 2},
		},
		Hollow: Primitive{
			Name:   "hollow",
			Kind:   KindSphere,
			Frame:  FrameWorld,
			Radius: 1.2,
			Color:  v3.Vec{X: 70, Y: 80, Z: 230},
		},
		Axle: Primitive{
			Name:   "axle",
			Kind:   KindCylinder,
			Frame:  FrameSpin,
			Height: 2,
			Radius: 0.3,
			Color:  v3.Vec{X: 70, Y: 230, Z: 80},
		},
		Inner: Primitive{
			Name:       "inner",
			Kind:       KindBox,
			Frame:      FrameDrift,
			Size:       v3.Vec{X: 0.7, Y: 0.7, Z: 0.7},
			FaceOffset: 2,
		},
		Accents: []Primitive{
			{
				Name:   "north",
				Kind:   KindSphere,
				Frame:  FrameSpin,
				Center: v3.Vec{X: 0, Y: 0, Z: 2},
				Radius: 0.3,
				Color:  v3.Vec{X: 0, Y: 255, Z: 255},
			},
			{
				Name:   "south",
				Kind:   KindSphere,
				Frame:  FrameSpin,
				Center: v3.Vec{X: 0, Y: 0, Z: -2},
				Radius: 0.3,
				Color:  v3.Vec{X: 255, Y: 0, Z: 255},
			},
		},
	}
}

// Primitives returns the scene's primitives in evaluation order.
func (s *Scene) Primitives() []Primitive {
	ps := make([]Primitive, 0, 4+len(s.Accents))
	ps = append(ps, s.Core, s.Hollow, s.Axle, s.Inner)
	return append(ps, s.Accents...)
}

// Evaluate returns the scene distance and surface colour at p for time t.
//
// Colour comparisons are strict, so on a distance tie the colour already
// held is kept and the earlier primitive in evaluation order wins.
func (s *Scene) Evaluate(p v3.Vec, t float64) Sample {
	f := framesAt(p, t)

	core, color := s.Core.eval(&f)
	hollow, hollowColor := s.Hollow.eval(&f)
	if core < -hollow {
		color = hollowColor
	}
	d := shape.Difference(core, hollow)

	axle, axleColor := s.Axle.eval(&f)
	d = shape.Union(shape.Intersection(axle, -core), d)
	if axle < core {
		color = axleColor
	}

	// The inner box joins whole; the axle is only cut out of its colour.
	inner, innerColor := s.Inner.eval(&f)
	if shape.Difference(inner, axle) < d {
		color = innerColor
	}
	d = shape.Union(d, inner)

	for i := range s.Accents {
		ad, ac := s.Accents[i].eval(&f)
		if ad < d {
			color = ac
		}
		d = shape.Union(d, ad)
	}

	return Sample{Distance: d, Color: color}
}

// Radius returns the radius of an origin-centred sphere containing every
// primitive at every time.
func (s *Scene) Radius() float64 {
	var r float64
	for _, p := range s.Primitives() {
		r = max(r, p.reach())
	}
	return r
}

// Snapshot freezes the scene at time t. The bounds are a cube around the
// scene's radius with a small margin.
func (s *Scene) Snapshot(t float64) Snapshot {
	r := s.Radius() * 1.1
	return Snapshot{
		Field: s,
		Time:  t,
		Bounds: sdf.Box3{
			Min: v3.Vec{X: -r, Y: -r, Z: -r},
			Max: v3.Vec{X: r, Y: r, Z: r},
		},
	}
}
