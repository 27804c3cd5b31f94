package rt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestStarSpreads(t *testing.T) {
	for _, test := range []struct {
		n    int
		want float64
	}{
		{3, 0.75},
		{4, 0.5},
		{6, 0.25},
	} {
		got, ok := StarSpread(test.n)
		if !ok || got != test.want {
			t.Errorf("StarSpread(%d) = (%v, %v), want (%v, true)", test.n, got, ok, test.want)
		}
	}
	if _, ok := StarSpread(11); ok {
		t.Error("hendecagon has no cached star spread")
	}
	// Cached spreads agree with sin²(π/n).
	for _, n := range []int{3, 4, 5, 6, 7, 8, 9, 10, 12} {
		got, _ := StarSpread(n)
		sin := math.Sin(math.Pi / float64(n))
		if math.Abs(got-sin*sin) > 1e-12 {
			t.Errorf("StarSpread(%d) = %v, want sin²(π/%d) = %v", n, got, n, sin*sin)
		}
	}
}

func TestNgonVertices(t *testing.T) {
	tri := NgonVertices(3, 1)
	if tri.Method != MethodAlgebraic {
		t.Errorf("triangle method = %v, want algebraic", tri.Method)
	}
	want := []r2.Vec{
		{X: 1},
		{X: -0.5, Y: math.Sqrt(3) / 2},
		{X: -0.5, Y: -math.Sqrt(3) / 2},
	}
	for i, v := range tri.Vertices {
		if math.Abs(v.X-want[i].X) > tol || math.Abs(v.Y-want[i].Y) > tol {
			t.Errorf("triangle v%d = %v, want %v", i, v, want[i])
		}
	}

	sq := NgonVertices(4, 1)
	if math.Abs(sq.Vertices[1].Y-1) > tol || math.Abs(sq.Vertices[2].X+1) > tol {
		t.Errorf("square vertices wrong: %v", sq.Vertices)
	}

	if hep := NgonVertices(7, 1); hep.Method != MethodCubic {
		t.Errorf("heptagon method = %v, want cubic", hep.Method)
	}
	if hen := NgonVertices(11, 1); hen.Method != MethodTranscendental {
		t.Errorf("hendecagon method = %v, want transcendental", hen.Method)
	}
}

func TestNgonVerticesOnCircle(t *testing.T) {
	const r = 2.5
	for n := 3; n <= 13; n++ {
		ngon := NgonVertices(n, r)
		if len(ngon.Vertices) != n {
			t.Fatalf("n=%d: got %d vertices", n, len(ngon.Vertices))
		}
		for i, v := range ngon.Vertices {
			if math.Abs(r2.Norm2(v)-r*r) > 1e-10 {
				t.Errorf("n=%d v%d: |v|² = %v, want %v", n, i, r2.Norm2(v), r*r)
			}
		}
	}
}

func TestNgonVerticesPanicsBelow3(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NgonVertices(2, 1) should panic")
		}
	}()
	NgonVertices(2, 1)
}

func TestCentralSpread(t *testing.T) {
	for _, test := range []struct {
		n    int
		want float64 // sin²(2π/n)
	}{
		{3, 0.75},
		{4, 1.0},
		{6, 0.75},
	} {
		if got := CentralSpread(test.n); math.Abs(got-test.want) > tol {
			t.Errorf("CentralSpread(%d) = %v, want %v", test.n, got, test.want)
		}
	}
}
