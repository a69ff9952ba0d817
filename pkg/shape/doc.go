// Package shape provides the signed distance functions used by the scene:
// sphere, box and cylinder primitives, the min/max boolean operators that
// combine them, and single-axis rotations for moving a query point into a
// primitive's frame.
//
// Distances are negative inside a solid and positive outside. Every
// function here is pure and safe for concurrent use.
package shape
