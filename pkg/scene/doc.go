// Package scene defines the animated composition of primitives that the
// renderer marches against.
//
// A Scene is a fixed set of primitive descriptors combined by a single
// evaluation pipeline. Geometry and colour travel together through that
// pipeline: each combination step keeps the colour of whichever operand is
// closer at that step, so the winning colour depends on evaluation order
// and is never reconstructed from final distances.
package scene
