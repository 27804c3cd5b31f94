package primecut

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

const (
	// equiangularMaxStdDev is the population standard deviation of interior
	// angles, in degrees, below which a polygon counts as equiangular.
	equiangularMaxStdDev = 0.5
	// equilateralMaxCV is the edge-length coefficient of variation, in
	// percent, below which a polygon counts as equilateral.
	equilateralMaxCV = 1.0
)

// PolygonMetrics summarizes how close a convex polygon is to the regular
// n-gon with the same vertex count.
type PolygonMetrics struct {
	Angles      []float64 // interior angles in degrees, hull order
	MaxAngle    float64
	Centroid    r2.Vec
	MaxRadius   float64
	EdgeLengths []float64
	AngleStdDev float64 // degrees, population standard deviation
	EdgeCV      float64 // percent
	Equiangular bool
	Equilateral bool
	Regularity  float64 // 0 irregular to 1 regular
}

// EdgeLengths returns the side lengths of the closed polygon, edge i
// running from vertex i to vertex i+1.
func EdgeLengths(poly []r2.Vec) []float64 {
	n := len(poly)
	out := make([]float64, n)
	for i := range poly {
		out[i] = r2.Norm(r2.Sub(poly[(i+1)%n], poly[i]))
	}
	return out
}

// Analyze computes the full metric set for a hull polygon. Degenerate hulls
// (fewer than 3 vertices) report zero metrics. The regularity score blends
// two terms: mean absolute deviation of the angles from the ideal
// 180(n-2)/n, scaled so 10° of deviation scores zero, and the edge-length
// CV, scaled so 10% scores zero.
func Analyze(hull []r2.Vec) PolygonMetrics {
	if len(hull) < 3 {
		return PolygonMetrics{}
	}
	n := len(hull)
	m := PolygonMetrics{
		Angles:      InteriorAngles(hull),
		EdgeLengths: EdgeLengths(hull),
	}
	m.Centroid, m.MaxRadius = CentroidMaxRadius(hull)
	for _, a := range m.Angles {
		if a > m.MaxAngle {
			m.MaxAngle = a
		}
	}

	m.AngleStdDev = stat.PopStdDev(m.Angles, nil)
	m.Equiangular = m.AngleStdDev < equiangularMaxStdDev

	meanEdge := stat.Mean(m.EdgeLengths, nil)
	m.EdgeCV = 100 * stat.PopStdDev(m.EdgeLengths, nil) / (meanEdge + 1e-10)
	m.Equilateral = m.EdgeCV < equilateralMaxCV

	ideal := 180 * float64(n-2) / float64(n)
	angleDev := 0.0
	for _, a := range m.Angles {
		angleDev += math.Abs(a - ideal)
	}
	angleDev /= float64(n)
	angleScore := math.Max(0, 1-angleDev/10)
	edgeScore := math.Max(0, 1-m.EdgeCV/10)
	m.Regularity = (angleScore + edgeScore) / 2
	return m
}
