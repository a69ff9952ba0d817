package sdfx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/asciimarch/pkg/scene"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestNewDefaultsCells(t *testing.T) {
	if got := New(0).Cells(); got != DefaultMeshCells {
		t.Errorf("New(0).Cells() = %d, want %d", got, DefaultMeshCells)
	}
	if got := New(32).Cells(); got != 32 {
		t.Errorf("New(32).Cells() = %d, want 32", got)
	}
}

func TestSceneMesh(t *testing.T) {
	s := scene.Default()
	k := New(40)

	mesh, err := k.ToMesh(s.Snapshot(0))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() || mesh.TriangleCount() == 0 {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}

	// Every vertex must lie within the scene radius, allowing a cell of
	// slack for the marching cubes grid.
	min, max := mesh.Bounds()
	limit := float32(s.Radius() + 0.25)
	for i := 0; i < 3; i++ {
		if min[i] < -limit || max[i] > limit {
			t.Errorf("axis %d spans [%f, %f], want within ±%f", i, min[i], max[i], limit)
		}
	}
	t.Logf("scene triangle count: %d", mesh.TriangleCount())
}

func TestSphereMeshRadius(t *testing.T) {
	ball := scene.FieldFunc(func(p v3.Vec, _ float64) scene.Sample {
		return scene.Sample{Distance: p.Length() - 1}
	})
	snap := scene.Snapshot{
		Field:  ball,
		Bounds: sdf.Box3{Min: v3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, Max: v3.Vec{X: 1.5, Y: 1.5, Z: 1.5}},
	}
	mesh, err := New(30).ToMesh(snap)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}

	const tol = 0.05
	for v := 0; v < len(mesh.Vertices); v += 3 {
		x, y, z := float64(mesh.Vertices[v]), float64(mesh.Vertices[v+1]), float64(mesh.Vertices[v+2])
		if r := math.Sqrt(x*x + y*y + z*z); math.Abs(r-1) > tol {
			t.Fatalf("vertex %d at radius %f, want 1±%v", v/3, r, tol)
		}
	}
}

func TestEmptyFieldFails(t *testing.T) {
	empty := scene.FieldFunc(func(v3.Vec, float64) scene.Sample {
		return scene.Sample{Distance: 1}
	})
	snap := scene.Snapshot{
		Field:  empty,
		Bounds: sdf.Box3{Min: v3.Vec{X: -1, Y: -1, Z: -1}, Max: v3.Vec{X: 1, Y: 1, Z: 1}},
	}
	if _, err := New(10).ToMesh(snap); err == nil {
		t.Error("ToMesh of an empty field: want error")
	}
}

func TestWriteSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.stl")
	if err := New(24).WriteSTL(scene.Default().Snapshot(1.5), path); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// Binary STL: 80-byte header, 4-byte count, 50 bytes per triangle.
	if info.Size() <= 84 {
		t.Errorf("STL file is %d bytes", info.Size())
	}
}
