// Package kernel defines how a frozen distance field is turned into a
// triangle mesh. The sdfx subpackage provides the implementation.
package kernel

import "github.com/deadsy/sdfx/sdf"

// Kernel tessellates distance fields.
type Kernel interface {
	// ToMesh returns the triangles of the zero level set of s.
	ToMesh(s sdf.SDF3) (*Mesh, error)
	// WriteSTL tessellates s and writes it to path as binary STL.
	WriteSTL(s sdf.SDF3, path string) error
}
