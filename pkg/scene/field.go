package scene

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Sample is the value of a field at one point: a signed distance and the
// colour of the surface that won there, in RGB 0..255.
type Sample struct {
	Distance float64
	Color    v3.Vec
}

// Field is an animated signed distance field with colour.
// Implementations must be pure so that pixels can be evaluated
// concurrently.
type Field interface {
	Evaluate(p v3.Vec, t float64) Sample
}

// FieldFunc adapts an ordinary function to the Field interface.
type FieldFunc func(p v3.Vec, t float64) Sample

// Evaluate calls f(p, t).
func (f FieldFunc) Evaluate(p v3.Vec, t float64) Sample {
	return f(p, t)
}

// Compile-time interface checks.
var (
	_ Field    = (*Scene)(nil)
	_ Field    = FieldFunc(nil)
	_ sdf.SDF3 = Snapshot{}
)

// Snapshot freezes a field at one instant so it can be handed to sdfx as
// an sdf.SDF3. Colour is dropped.
type Snapshot struct {
	Field  Field
	Time   float64
	Bounds sdf.Box3
}

// Evaluate returns the field distance at p.
func (s Snapshot) Evaluate(p v3.Vec) float64 {
	return s.Field.Evaluate(p, s.Time).Distance
}

// BoundingBox returns the box the snapshot is known to lie within.
func (s Snapshot) BoundingBox() sdf.Box3 {
	return s.Bounds
}
