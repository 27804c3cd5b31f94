package rt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func vecEq(a, b r3.Vec) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestQuadrayBasisCartesian(t *testing.T) {
	for _, test := range []struct {
		name string
		q    Quadray
		want r3.Vec
	}{
		{"A", QuadrayA, r3.Vec{X: -1, Y: -1, Z: 1}},
		{"B", QuadrayB, r3.Vec{X: 1, Y: 1, Z: 1}},
		{"C", QuadrayC, r3.Vec{X: -1, Y: 1, Z: -1}},
		{"D", QuadrayD, r3.Vec{X: 1, Y: -1, Z: -1}},
		{"origin", QuadrayOrigin, r3.Vec{}},
		// Absent-axis quadrays give the dual tetrahedron vertices.
		{"dual A", Quadray{B: 1, C: 1, D: 1}, r3.Vec{X: 1, Y: 1, Z: -1}},
		{"dual B", Quadray{A: 1, C: 1, D: 1}, r3.Vec{X: -1, Y: -1, Z: -1}},
	} {
		if got := test.q.Cartesian(); !vecEq(got, test.want) {
			t.Errorf("%s: %v, want %v", test.name, got, test.want)
		}
	}
}

func TestQuadrayEdgeQuadrance(t *testing.T) {
	verts := []Quadray{QuadrayA, QuadrayB, QuadrayC, QuadrayD}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if q := verts[i].Quadrance(verts[j]); math.Abs(q-8) > tol {
				t.Errorf("Q(%d,%d) = %v, want 8", i, j, q)
			}
		}
	}
}

func TestQuadrayCartesianRoundtrip(t *testing.T) {
	orig := Quadray{A: 2, B: 1, C: 0, D: 1}
	xyz := orig.Cartesian()
	back := QuadrayFromCartesian(xyz)
	min := math.Min(math.Min(back.A, back.B), math.Min(back.C, back.D))
	if math.Abs(min) > tol {
		t.Errorf("canonical form should have min component 0, got %v", min)
	}
	if !vecEq(back.Cartesian(), xyz) {
		t.Errorf("roundtrip mismatch: %v vs %v", back.Cartesian(), xyz)
	}
}

func TestQuadrayNormalizeZeroSum(t *testing.T) {
	n := Quadray{A: 3, B: 1, C: 2, D: 0}.Normalize()
	if sum := n.A + n.B + n.C + n.D; math.Abs(sum) > tol {
		t.Errorf("normalized sum = %v, want 0", sum)
	}
}

func TestQuadrayArithmetic(t *testing.T) {
	sum := QuadrayA.Add(QuadrayB)
	if sum.A != 1 || sum.B != 1 || sum.C != 0 || sum.D != 0 {
		t.Errorf("A+B = %v", sum)
	}
	if diff := sum.Sub(QuadrayB); diff != QuadrayA {
		t.Errorf("A+B−B = %v, want A", diff)
	}
	if scaled := QuadrayA.Scale(3); scaled.A != 3 || scaled.B != 0 {
		t.Errorf("3·A = %v", scaled)
	}
	f := Quadray{A: 1, B: 0.5}.F32()
	if f[0] != 1 || f[1] != 0.5 || f[2] != 0 || f[3] != 0 {
		t.Errorf("F32 = %v", f)
	}
}
