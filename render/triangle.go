// Package render turns projections into visual artifacts: an extruded
// shadow mesh written as binary STL, line-segment overlays for a GPU
// viewer, and 2D figures of the projected points and hull. Everything here
// is a consumer of the engine's structured results; nothing feeds back
// into classification.
package render

import "gonum.org/v1/gonum/spatial/r3"

// Triangle3 is a 3d triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the normal vector to the plane defined by the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate reports whether the triangle has near-zero area.
func (t Triangle3) Degenerate(tol float64) bool {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Norm2(r3.Cross(e1, e2)) < tol*tol
}
