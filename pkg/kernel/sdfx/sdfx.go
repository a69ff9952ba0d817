// Package sdfx implements kernel.Kernel with the marching cubes renderer
// of the github.com/deadsy/sdfx library.
package sdfx

import (
	"fmt"

	"github.com/chazu/asciimarch/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells is the marching cubes resolution along the longest
// bounding box axis.
const DefaultMeshCells = 100

// SdfxKernel tessellates with uniform marching cubes.
type SdfxKernel struct {
	cells int
}

// New returns a kernel using the given resolution; cells <= 0 selects
// DefaultMeshCells.
func New(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int {
	return k.cells
}

// ToMesh converts a field to a triangle mesh.
func (k *SdfxKernel) ToMesh(s sdf.SDF3) (*kernel.Mesh, error) {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(k.cells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("sdfx: no surface inside bounding box")
	}

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// WriteSTL tessellates a field and saves it as STL.
func (k *SdfxKernel) WriteSTL(s sdf.SDF3, path string) error {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(k.cells))
	if len(triangles) == 0 {
		return fmt.Errorf("sdfx: no surface inside bounding box")
	}
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("sdfx: write %s: %w", path, err)
	}
	return nil
}
