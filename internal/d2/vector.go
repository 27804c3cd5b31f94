package d2

import "gonum.org/v1/gonum/spatial/r2"

// Cross returns the signed magnitude of the 2d cross product of a and b.
// Positive for a counter-clockwise turn from a to b.
func Cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

type Set []r2.Vec

// Centroid returns the arithmetic mean of the set.
func (a Set) Centroid() r2.Vec {
	var sum r2.Vec
	for _, v := range a {
		sum = r2.Add(sum, v)
	}
	return r2.Scale(1/float64(len(a)), sum)
}
