package rt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NgonMethod records how an n-gon's star spread was obtained.
type NgonMethod int

const (
	// MethodAlgebraic means the spread is an exact radical expression.
	MethodAlgebraic NgonMethod = iota
	// MethodCubic means the spread comes from a cached cubic root
	// (heptagon, nonagon).
	MethodCubic
	// MethodTranscendental means no exact spread is cached and sin²(π/n)
	// was computed numerically.
	MethodTranscendental
)

func (m NgonMethod) String() string {
	switch m {
	case MethodAlgebraic:
		return "algebraic"
	case MethodCubic:
		return "cubic"
	case MethodTranscendental:
		return "transcendental"
	}
	return "unknown"
}

// Ngon is the result of the reflection-based n-gon construction.
type Ngon struct {
	Vertices   []r2.Vec
	StarSpread float64
	Method     NgonMethod
}

// StarSpread returns the exact star spread sin²(π/n) for n-gons with a
// cached algebraic or cubic form. ok is false for other n.
func StarSpread(n int) (s float64, ok bool) {
	switch n {
	case 3:
		return 3.0 / 4.0, true
	case 4:
		return 1.0 / 2.0, true
	case 5:
		return (5 - sqrt5) / 8, true
	case 6:
		return 1.0 / 4.0, true
	case 7:
		return HeptagonStarSpread(), true
	case 8:
		return (2 - sqrt2) / 4, true
	case 9:
		return NonagonStarSpread(), true
	case 10:
		return (3 - sqrt5) / 8, true
	case 12:
		return (2 - sqrt3) / 4, true
	}
	return 0, false
}

// NgonVertices generates the n vertices of a regular n-gon of radius r by
// Wildberger's reflection method (Divine Proportions §14.5). One square
// root total, for the initial slope m1 = tan(π/n); the remaining slopes
// come from the tangent addition recurrence m' = (m+m1)/(1−m·m1) and each
// vertex is the Weierstrass point at t = m. The lower half is filled by the
// y → −y symmetry, and for even n the antipodal vertex is set exactly.
//
// Panics if n < 3; that is a programmer error, not an input condition.
func NgonVertices(n int, r float64) Ngon {
	if n < 3 {
		panic("rt: n-gon needs at least 3 vertices")
	}
	ss, ok := StarSpread(n)
	method := MethodAlgebraic
	switch {
	case !ok:
		sin := math.Sin(math.Pi / float64(n))
		ss = sin * sin
		method = MethodTranscendental
	case n == 7 || n == 9:
		method = MethodCubic
	}

	vertices := make([]r2.Vec, n)
	vertices[0] = r2.Vec{X: r}
	if n%2 == 0 {
		vertices[n/2] = r2.Vec{X: -r}
	}

	m1 := SlopeFromSpread(ss)
	half := (n - 1) / 2
	mk := m1
	for k := 1; k <= half; k++ {
		c := CircleParam(mk)
		vertices[k] = r2.Scale(r, c)
		vertices[n-k] = r2.Vec{X: r * c.X, Y: -r * c.Y}
		if k < half {
			mk = (mk + m1) / (1 - mk*m1)
		}
	}
	return Ngon{Vertices: vertices, StarSpread: ss, Method: method}
}

// CentralSpread is the spread between adjacent vertices of a regular n-gon
// as seen from the center, sin²(2π/n), derived from the generated vertex
// coordinates rather than trigonometry.
func CentralSpread(n int) float64 {
	ngon := NgonVertices(n, 1)
	v0 := ngon.Vertices[0]
	v1 := ngon.Vertices[1]
	dot := r2.Dot(v0, v1)
	return 1 - dot*dot/(r2.Norm2(v0)*r2.Norm2(v1))
}
