// Package rt holds the rational trigonometry helpers behind the projection
// engine: quadrance and spread replace distance and angle so most identities
// stay algebraic, with square roots deferred to the final step.
package rt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quadrance is the squared distance between two points. The fundamental RT
// separation measure: no square root, so exact for rational inputs.
func Quadrance(p1, p2 r3.Vec) float64 {
	return r3.Norm2(r3.Sub(p2, p1))
}

// Spread measures the perpendicularity of two vectors:
// s = 1 − (v1·v2)²/(Q1·Q2), with 0 parallel and 1 perpendicular.
// A zero vector has spread 0 against anything.
func Spread(v1, v2 r3.Vec) float64 {
	q1 := r3.Norm2(v1)
	q2 := r3.Norm2(v2)
	if q1 == 0 || q2 == 0 {
		return 0
	}
	dot := r3.Dot(v1, v2)
	return 1 - dot*dot/(q1*q2)
}

// CircleParam is the Weierstrass parameterization of the unit circle,
// t ↦ ((1−t²)/(1+t²), 2t/(1+t²)). Maps all reals onto the circle with
// rational operations only: t=0 → (1,0), t=1 → (0,1), t→∞ → (−1,0).
func CircleParam(t float64) r2.Vec {
	t2 := t * t
	d := 1 + t2
	return r2.Vec{X: (1 - t2) / d, Y: 2 * t / d}
}

// ReflectInLine reflects p across the line through the origin with slope m,
// using only rational operations (Wildberger, Divine Proportions §14.5).
// Identity: ReflectInLine({r,0}, m) == r·CircleParam(m).
func ReflectInLine(p r2.Vec, m float64) r2.Vec {
	m2 := m * m
	d := 1 + m2
	return r2.Vec{
		X: ((1-m2)*p.X + 2*m*p.Y) / d,
		Y: (2*m*p.X - (1-m2)*p.Y) / d,
	}
}

// SlopeFromSpread converts a star spread to the slope of its star line,
// m = √(s/(1−s)) = tan of the corresponding angle. This is the one square
// root in the reflection-based n-gon construction.
func SlopeFromSpread(s float64) float64 {
	return math.Sqrt(s / (1 - s))
}

// SpherePlaneCircleRadius returns the radius of the circle where a plane
// cuts a sphere, from the sphere's quadrance (squared radius) and the
// squared center-to-plane distance. ok is false when the plane misses the
// sphere. The square root is deferred to this final step.
func SpherePlaneCircleRadius(sphereQ, distQ float64) (radius float64, ok bool) {
	if distQ > sphereQ {
		return 0, false
	}
	return math.Sqrt(sphereQ - distQ), true
}

// EdgeValidation reports one edge against an expected quadrance.
type EdgeValidation struct {
	Edge  [2]int
	Q     float64
	Error float64
	Valid bool
}

// ValidateEdges checks that every listed edge of a polyhedron has the
// expected quadrance, the RT uniform-edge test for regularity.
func ValidateEdges(vertices []r3.Vec, edges [][2]int, expectedQ, tol float64) []EdgeValidation {
	out := make([]EdgeValidation, len(edges))
	for k, e := range edges {
		q := Quadrance(vertices[e[0]], vertices[e[1]])
		err := math.Abs(q - expectedQ)
		out[k] = EdgeValidation{Edge: e, Q: q, Error: err, Valid: err < tol}
	}
	return out
}

// VerifyEuler checks V − E + F = 2, which holds for convex polyhedra.
func VerifyEuler(vertices, edges, faces int) bool {
	return vertices-edges+faces == 2
}
