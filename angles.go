package primecut

import (
	"math"

	"github.com/artexplorer/primecut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// InteriorAngles returns the interior angle in degrees at every vertex of
// the closed polygon, index-aligned with the input. The cosine ratio is
// clamped to [-1,1] before acos: floating error can push it just outside
// the interval and acos would then return NaN. A zero-length neighbor
// vector yields a 0 angle instead of propagating NaN.
func InteriorAngles(poly []r2.Vec) []float64 {
	n := len(poly)
	out := make([]float64, n)
	for i := range poly {
		v1 := r2.Sub(poly[(i-1+n)%n], poly[i])
		v2 := r2.Sub(poly[(i+1)%n], poly[i])
		m1 := r2.Norm(v1)
		m2 := r2.Norm(v2)
		if m1 == 0 || m2 == 0 {
			continue
		}
		cos := Clamp(r2.Dot(v1, v2)/(m1*m2), -1, 1)
		out[i] = RtoD(math.Acos(cos))
	}
	return out
}

// MaxInteriorAngle is the largest interior angle of the polygon in degrees,
// 0 for polygons with fewer than 3 vertices.
func MaxInteriorAngle(poly []r2.Vec) float64 {
	if len(poly) < 3 {
		return 0
	}
	max := 0.0
	for _, a := range InteriorAngles(poly) {
		if a > max {
			max = a
		}
	}
	return max
}

// CentroidMaxRadius returns the arithmetic mean of the polygon vertices and
// the maximum distance from that centroid to any vertex. Downstream scaling
// and regularity comparisons use both; the hull and search logic do not.
func CentroidMaxRadius(poly []r2.Vec) (centroid r2.Vec, maxRadius float64) {
	if len(poly) == 0 {
		return r2.Vec{}, 0
	}
	centroid = d2.Set(poly).Centroid()
	for _, p := range poly {
		if r := r2.Norm(r2.Sub(p, centroid)); r > maxRadius {
			maxRadius = r
		}
	}
	return centroid, maxRadius
}
