package primecut_test

import (
	"errors"
	"math"
	"testing"

	"github.com/artexplorer/primecut"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-6

func TestSpreadsValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		spreads primecut.Spreads
		wantIdx int // -1 when valid
	}{
		{"all zero", primecut.Spreads{0, 0, 0}, -1},
		{"all one", primecut.Spreads{1, 1, 1}, -1},
		{"interior", primecut.Spreads{0.25, 0.5, 0.75}, -1},
		{"negative", primecut.Spreads{-0.1, 0.5, 0}, 0},
		{"above one", primecut.Spreads{0, 0.5, 1.1}, 2},
		{"nan", primecut.Spreads{0, math.NaN(), 0}, 1},
	} {
		err := test.spreads.Validate()
		if test.wantIdx < 0 {
			if err != nil {
				t.Errorf("%s: unexpected error %v", test.name, err)
			}
			continue
		}
		var spreadErr *primecut.SpreadError
		if !errors.As(err, &spreadErr) {
			t.Fatalf("%s: error %v is not a *SpreadError", test.name, err)
		}
		if spreadErr.Index != test.wantIdx {
			t.Errorf("%s: offending index %d, want %d", test.name, spreadErr.Index, test.wantIdx)
		}
	}
}

func TestComposeRejectsOutOfRange(t *testing.T) {
	_, err := primecut.Compose(primecut.Spreads{2, 0, 0})
	if err == nil {
		t.Fatal("out-of-range spread must be rejected, not clamped")
	}
}

func TestComposeOrthonormal(t *testing.T) {
	// Orthonormal for every spread triple on a grid over [0,1]³.
	vals := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	for _, s1 := range vals {
		for _, s2 := range vals {
			for _, s3 := range vals {
				basis, err := primecut.Compose(primecut.Spreads{s1, s2, s3})
				if err != nil {
					t.Fatalf("[%v %v %v]: %v", s1, s2, s3, err)
				}
				checkUnit := func(name string, v r3.Vec) {
					if math.Abs(r3.Norm(v)-1) > tol {
						t.Errorf("[%v %v %v]: |%s| = %v", s1, s2, s3, name, r3.Norm(v))
					}
				}
				checkUnit("right", basis.Right)
				checkUnit("up", basis.Up)
				checkUnit("normal", basis.Normal)
				for _, pair := range []struct {
					name string
					dot  float64
				}{
					{"right·up", r3.Dot(basis.Right, basis.Up)},
					{"right·normal", r3.Dot(basis.Right, basis.Normal)},
					{"up·normal", r3.Dot(basis.Up, basis.Normal)},
				} {
					if math.Abs(pair.dot) > tol {
						t.Errorf("[%v %v %v]: %s = %v", s1, s2, s3, pair.name, pair.dot)
					}
				}
			}
		}
	}
}

func TestComposeElementaryRotations(t *testing.T) {
	vecEq := func(a, b r3.Vec) bool {
		return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
	}
	// Identity at zero spreads.
	basis, _ := primecut.Compose(primecut.Spreads{0, 0, 0})
	if !vecEq(basis.Right, r3.Vec{X: 1}) || !vecEq(basis.Up, r3.Vec{Y: 1}) || !vecEq(basis.Normal, r3.Vec{Z: 1}) {
		t.Errorf("zero spreads should give the identity basis, got %+v", basis)
	}
	// s1=1 is a 90° rotation about Z: x → y.
	basis, _ = primecut.Compose(primecut.Spreads{1, 0, 0})
	if !vecEq(basis.Right, r3.Vec{Y: 1}) || !vecEq(basis.Normal, r3.Vec{Z: 1}) {
		t.Errorf("Rz(90°) basis wrong: %+v", basis)
	}
	// s2=1 is 90° about Y: z → x.
	basis, _ = primecut.Compose(primecut.Spreads{0, 1, 0})
	if !vecEq(basis.Normal, r3.Vec{X: 1}) || !vecEq(basis.Up, r3.Vec{Y: 1}) {
		t.Errorf("Ry(90°) basis wrong: %+v", basis)
	}
	// s3=1 is 90° about X: y → z.
	basis, _ = primecut.Compose(primecut.Spreads{0, 0, 1})
	if !vecEq(basis.Up, r3.Vec{Z: 1}) || !vecEq(basis.Right, r3.Vec{X: 1}) {
		t.Errorf("Rx(90°) basis wrong: %+v", basis)
	}
}

func TestComposeOrderIsZYX(t *testing.T) {
	// With s1=s2=1 (90° about Z and Y), the first basis column
	// distinguishes Rz·Ry from Ry·Rz: Rz(90)·Ry(90)·(1,0,0)
	// = Rz(90)·(0,0,-1) = (0,0,-1); the reversed order gives (0,1,0).
	basis, err := primecut.Compose(primecut.Spreads{1, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := r3.Vec{Z: -1}
	if math.Abs(basis.Right.X-want.X) > tol || math.Abs(basis.Right.Y-want.Y) > tol || math.Abs(basis.Right.Z-want.Z) > tol {
		t.Errorf("right = %v, want %v: composition order is not Rz·Ry·Rx", basis.Right, want)
	}
}
