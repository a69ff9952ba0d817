package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chazu/asciimarch/pkg/shape"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const tol = 1e-9

var (
	green   = v3.Vec{X: 0, Y: 255, Z: 0}
	cyan    = v3.Vec{X: 0, Y: 255, Z: 255}
	magenta = v3.Vec{X: 255, Y: 0, Z: 255}
	blue    = v3.Vec{X: 70, Y: 80, Z: 230}
)

func TestEvaluateCentre(t *testing.T) {
	s := Default()
	got := s.Evaluate(v3.Vec{}, 0)

	// The centre lies inside the inner box, whose -z face takes the
	// second face colour once the table is rotated by two.
	if math.Abs(got.Distance-(-0.35)) > tol {
		t.Errorf("distance = %f, want -0.35", got.Distance)
	}
	if got.Color != green {
		t.Errorf("color = %v, want %v", got.Color, green)
	}
}

func TestEvaluateFarOutside(t *testing.T) {
	s := Default()
	got := s.Evaluate(v3.Vec{Z: 5}, 0)

	// Nearest surface is the north marker sphere at z=2.
	if math.Abs(got.Distance-2.7) > tol {
		t.Errorf("distance = %f, want 2.7", got.Distance)
	}
	if got.Color != cyan {
		t.Errorf("color = %v, want %v", got.Color, cyan)
	}
}

func TestEvaluateHollowWall(t *testing.T) {
	s := Default()
	p := v3.Vec{X: 0.6, Y: 0.6, Z: 0}
	got := s.Evaluate(p, 0)

	want := 1.2 - p.Length()
	if math.Abs(got.Distance-want) > tol {
		t.Errorf("distance = %f, want %f", got.Distance, want)
	}
	if got.Color != blue {
		t.Errorf("color = %v, want hollow colour %v", got.Color, blue)
	}
}

func TestEvaluateAccentFollowsSpin(t *testing.T) {
	s := Default()
	for _, tm := range []float64{0, 0.4, 1.7, 3} {
		// Undo the spin frame to find where the markers sit in world space.
		north := shape.RotateY(tm).Apply(shape.RotateX(tm).Apply(v3.Vec{Z: 2}))
		south := shape.RotateY(tm).Apply(shape.RotateX(tm).Apply(v3.Vec{Z: -2}))

		got := s.Evaluate(north, tm)
		if math.Abs(got.Distance-(-0.3)) > 1e-6 || got.Color != cyan {
			t.Errorf("t=%v north centre: got (%f, %v), want (-0.3, %v)", tm, got.Distance, got.Color, cyan)
		}
		got = s.Evaluate(south, tm)
		if math.Abs(got.Distance-(-0.3)) > 1e-6 || got.Color != magenta {
			t.Errorf("t=%v south centre: got (%f, %v), want (-0.3, %v)", tm, got.Distance, got.Color, magenta)
		}
	}
}

func TestEvaluateSignBounds(t *testing.T) {
	s := Default()
	rng := rand.New(rand.NewSource(1))
	randomDir := func() v3.Vec {
		for {
			v := v3.Vec{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1, Z: rng.Float64()*2 - 1}
			if l := v.Length(); l > 0.1 && l <= 1 {
				return v.DivScalar(l)
			}
		}
	}

	outer := s.Radius()
	for i := 0; i < 500; i++ {
		tm := rng.Float64() * 10
		dir := randomDir()

		// Beyond every primitive's reach the field must be positive.
		far := dir.MulScalar(outer + 0.01 + rng.Float64()*5)
		if d := s.Evaluate(far, tm).Distance; d <= 0 {
			t.Fatalf("Evaluate(%v, %v) = %f, want > 0", far, tm, d)
		}

		// Within the sphere inscribed in the inner box the field must be
		// negative whatever its rotation.
		near := dir.MulScalar(rng.Float64() * 0.34)
		if d := s.Evaluate(near, tm).Distance; d >= 0 {
			t.Fatalf("Evaluate(%v, %v) = %f, want < 0", near, tm, d)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	s := Default()
	p := v3.Vec{X: 0.3, Y: -0.8, Z: 1.1}
	first := s.Evaluate(p, 2.5)
	for i := 0; i < 10; i++ {
		if got := s.Evaluate(p, 2.5); got != first {
			t.Fatalf("evaluation %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestEvaluateTieKeepsEarlierColour(t *testing.T) {
	// Two accents at the same place: the first one's colour must win.
	s := &Scene{
		Core:   Primitive{Kind: KindBox, Size: v3.Vec{X: 0.1, Y: 0.1, Z: 0.1}, Center: v3.Vec{X: 50}},
		Hollow: Primitive{Kind: KindSphere, Center: v3.Vec{X: 50}, Radius: 0.01},
		Axle:   Primitive{Kind: KindCylinder, Center: v3.Vec{X: 50}, Height: 0.1, Radius: 0.01},
		Inner:  Primitive{Kind: KindSphere, Center: v3.Vec{X: 50}, Radius: 0.01},
		Accents: []Primitive{
			{Kind: KindSphere, Radius: 1, Color: cyan},
			{Kind: KindSphere, Radius: 1, Color: magenta},
		},
	}
	got := s.Evaluate(v3.Vec{Z: 3}, 0)
	if got.Distance != 2 {
		t.Errorf("distance = %f, want 2", got.Distance)
	}
	if got.Color != cyan {
		t.Errorf("color = %v, want first accent colour %v", got.Color, cyan)
	}
}

func TestPrimitivesOrder(t *testing.T) {
	want := []string{"core", "hollow", "axle", "inner", "north", "south"}
	ps := Default().Primitives()
	if len(ps) != len(want) {
		t.Fatalf("got %d primitives, want %d", len(ps), len(want))
	}
	for i, p := range ps {
		if p.Name != want[i] {
			t.Errorf("primitive %d = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestRadius(t *testing.T) {
	if got := Default().Radius(); math.Abs(got-2.3) > tol {
		t.Errorf("Radius() = %f, want 2.3", got)
	}
}

func TestSnapshot(t *testing.T) {
	s := Default()
	snap := s.Snapshot(0)

	if got, want := snap.Evaluate(v3.Vec{}), s.Evaluate(v3.Vec{}, 0).Distance; got != want {
		t.Errorf("snapshot distance = %f, want %f", got, want)
	}
	bb := snap.BoundingBox()
	if bb.Max.X < s.Radius() || bb.Min.X > -s.Radius() {
		t.Errorf("bounds %v do not contain radius %f", bb, s.Radius())
	}
}

func TestFieldFunc(t *testing.T) {
	f := FieldFunc(func(p v3.Vec, _ float64) Sample {
		return Sample{Distance: p.Length() - 1, Color: green}
	})
	got := f.Evaluate(v3.Vec{X: 3}, 7)
	if got.Distance != 2 || got.Color != green {
		t.Errorf("FieldFunc.Evaluate = %+v, want {2 %v}", got, green)
	}
}

func TestKindAndFrameStrings(t *testing.T) {
	if KindCylinder.String() != "cylinder" || Kind(9).String() != "unknown" {
		t.Errorf("unexpected Kind strings: %q %q", KindCylinder, Kind(9))
	}
	if FrameDrift.String() != "drift" || Frame(9).String() != "unknown" {
		t.Errorf("unexpected Frame strings: %q %q", FrameDrift, Frame(9))
	}
}
