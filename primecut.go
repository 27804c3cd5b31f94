package primecut

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spread-parameterized projection and convex-hull classification: rotate a
// 3d point set by three spreads, project it onto the rotated plane and
// classify the shadow polygon by its hull vertex count.

// Projection bundles everything one spread triple produces from a point
// set: the rotation basis, the per-point projection records in input order
// and the CCW hull of the shadow.
type Projection struct {
	Basis  RotationBasis
	Points []ProjectedPoint
	Hull   []r2.Vec
}

// HullCount returns the number of strictly convex shadow corners.
func (p Projection) HullCount() int { return len(p.Hull) }

// Degenerate reports whether fewer than three unique projected points
// survived deduplication.
func (p Projection) Degenerate() bool { return len(p.Hull) < 3 }

// Metrics analyzes the hull polygon.
func (p Projection) Metrics() PolygonMetrics { return Analyze(p.Hull) }

// ProjectAndHull is the single end-to-end call a visualization layer
// needs: compose the basis, project the points, compute the hull. The only
// error is an out-of-range spread; a degenerate hull is data, not an
// error.
func ProjectAndHull(points []r3.Vec, spreads Spreads, planeDistance float64) (Projection, error) {
	basis, err := Compose(spreads)
	if err != nil {
		return Projection{}, err
	}
	projected := Project(points, basis, planeDistance)
	plane := make([]r2.Vec, len(projected))
	for i, pt := range projected {
		plane[i] = pt.Plane
	}
	return Projection{Basis: basis, Points: projected, Hull: Hull(plane)}, nil
}
