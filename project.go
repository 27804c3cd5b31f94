package primecut

import (
	"github.com/artexplorer/primecut/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ProjectedPoint pairs one input vertex with its image on the projection
// plane. World is the original position and OnPlane its orthogonal drop
// onto the plane; both are kept so a viewer can draw projection rays.
// Plane holds the 2d coordinates in the {right,up} frame and Source the
// index into the input slice.
type ProjectedPoint struct {
	Plane   r2.Vec
	World   r3.Vec
	OnPlane r3.Vec
	Source  int
}

// Project drops every point orthogonally onto the plane centered at
// centroid + normal*planeDistance, oriented by the basis. Input order is
// preserved. The plane-local coordinates are invariant to planeDistance;
// only the OnPlane positions shift along the normal. Coplanar input
// degenerates gracefully (all drop distances near zero).
func Project(points []r3.Vec, basis RotationBasis, planeDistance float64) []ProjectedPoint {
	if len(points) == 0 {
		return nil
	}
	center := r3.Add(d3.Set(points).Centroid(), r3.Scale(planeDistance, basis.Normal))
	out := make([]ProjectedPoint, len(points))
	for i, v := range points {
		d := r3.Dot(r3.Sub(v, center), basis.Normal)
		onPlane := r3.Sub(v, r3.Scale(d, basis.Normal))
		local := r3.Sub(onPlane, center)
		out[i] = ProjectedPoint{
			Plane:   r2.Vec{X: r3.Dot(local, basis.Right), Y: r3.Dot(local, basis.Up)},
			World:   v,
			OnPlane: onPlane,
			Source:  i,
		}
	}
	return out
}
