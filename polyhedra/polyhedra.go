// Package polyhedra generates the vertex sets the projection engine
// classifies: tetrahedra, truncations, the icosahedron and the compounds
// used for prime-gon shadows. Vertex order is part of the contract: the
// hull scan's stable angle sort makes hull output depend on input order, so
// constructions here keep a fixed, documented ordering.
package polyhedra

import (
	"math"

	"github.com/artexplorer/primecut/rt"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tetrahedron returns the 4 vertices of a tetrahedron inscribed in the cube
// of the given half size, using alternating cube corners (odd parity).
func Tetrahedron(halfSize float64) []r3.Vec {
	s := halfSize
	return []r3.Vec{
		{X: -s, Y: -s, Z: -s},
		{X: s, Y: s, Z: -s},
		{X: s, Y: -s, Z: s},
		{X: -s, Y: s, Z: s},
	}
}

// DualTetrahedron is the negation of Tetrahedron: the other 4 cube corners.
func DualTetrahedron(halfSize float64) []r3.Vec {
	return negate(Tetrahedron(halfSize))
}

// tetEdges is the complete graph K4 on the base tetrahedron vertices.
var tetEdges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// TetrahedronEdges returns the 6 edges of the base tetrahedron as index
// pairs into Tetrahedron's vertex order.
func TetrahedronEdges() [][2]int {
	edges := make([][2]int, len(tetEdges))
	copy(edges, tetEdges[:])
	return edges
}

// TetrahedronFaceCount is the number of faces of the tetrahedron, for
// Euler-formula checks against TetrahedronEdges.
const TetrahedronFaceCount = 4

// TruncatedTetrahedron truncates the base tetrahedron by parameter t,
// clamped to [0, 0.5]:
//
//	t = 0    base tetrahedron, 4 vertices
//	t = 1/3  standard truncated tetrahedron, 12 vertices
//	t = 0.5  octahedron limit (edge midpoints), 6 vertices
//
// The 12-vertex case emits 3 cut points per base vertex, base vertices in
// order, each vertex's edges in K4 edge order. At halfSize=3, t=1/3 the
// vertices are the odd-parity sign permutations of (1,1,3), circumradius
// √11.
func TruncatedTetrahedron(halfSize, truncation float64) []r3.Vec {
	t := math.Max(0, math.Min(0.5, truncation))
	base := Tetrahedron(halfSize)

	if t < 0.001 {
		return base
	}
	if t > 0.499 {
		mids := make([]r3.Vec, len(tetEdges))
		for k, e := range tetEdges {
			mids[k] = r3.Scale(0.5, r3.Add(base[e[0]], base[e[1]]))
		}
		return mids
	}

	// Which edges meet each base vertex, and which end of the edge it is.
	vertexEdges := [4][3]int{{0, 1, 2}, {0, 3, 4}, {1, 3, 5}, {2, 4, 5}}
	vertexEnds := [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}

	type cutKey struct{ edge, fromEnd int }
	seen := make(map[cutKey]bool, 12)
	vertices := make([]r3.Vec, 0, 12)
	for v := 0; v < 4; v++ {
		for e := 0; e < 3; e++ {
			key := cutKey{edge: vertexEdges[v][e], fromEnd: vertexEnds[v][e]}
			if seen[key] {
				continue
			}
			seen[key] = true
			i, j := tetEdges[key.edge][0], tetEdges[key.edge][1]
			from, to := base[i], base[j]
			if key.fromEnd == 1 {
				from, to = to, from
			}
			vertices = append(vertices, r3.Add(from, r3.Scale(t, r3.Sub(to, from))))
		}
	}
	return vertices
}

// TruncatedDualTetrahedron truncates the dual tetrahedron: the negation of
// TruncatedTetrahedron with the same parameters.
func TruncatedDualTetrahedron(halfSize, truncation float64) []r3.Vec {
	return negate(TruncatedTetrahedron(halfSize, truncation))
}

// Icosahedron returns the 12 icosahedron vertices on a sphere of radius
// halfSize, as three orthogonal golden rectangles with coordinates a = 1/√(φ+2)
// and b = φ/√(φ+2) scaled by halfSize. Rectangle order XZ, YZ, XY; sign
// order (+,+), (+,−), (−,+), (−,−) within each rectangle.
func Icosahedron(halfSize float64) []r3.Vec {
	// 1 + φ² = φ + 2: the PhiExpr form keeps the radicand exact.
	onePlusPhiSq := rt.ExprOne.Add(rt.ExprPhiSq).Float()
	norm := halfSize / math.Sqrt(onePlusPhiSq)
	a := norm
	b := rt.Phi() * norm
	return []r3.Vec{
		{Y: a, Z: b},
		{Y: a, Z: -b},
		{Y: -a, Z: b},
		{Y: -a, Z: -b},
		{X: a, Y: b},
		{X: a, Y: -b},
		{X: -a, Y: b},
		{X: -a, Y: -b},
		{X: b, Z: a},
		{X: b, Z: -a},
		{X: -b, Z: a},
		{X: -b, Z: -a},
	}
}

func negate(points []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, v := range points {
		out[i] = r3.Scale(-1, v)
	}
	return out
}
