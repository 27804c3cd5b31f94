package polyhedra

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// compoundDedupDecimals is the coarse per-axis rounding applied when
// composing compounds. Downstream projection promises its input is already
// deduplicated at about two decimal places; this enforces that promise.
const compoundDedupDecimals = 2

// TruncTetPlusTet is the legacy 16-vertex heptagon compound: truncated
// tetrahedron plus the same-parity base tetrahedron, both at halfSize 3,
// raw coordinates. The halfSize argument is kept for signature parity with
// the other compounds but does not scale this one.
func TruncTetPlusTet(halfSize float64) []r3.Vec {
	_ = halfSize
	verts := TruncatedTetrahedron(3, 1.0/3.0)
	return dedupCoarse(append(verts, Tetrahedron(3)...))
}

// TruncTetPlusDualTet is the shipped 16-vertex heptagon compound: truncated
// tetrahedron plus the dual tetrahedron, every vertex normalized to the
// unit sphere and scaled by halfSize. The dual parity breaks the symmetry
// planes shared by the legacy compound and the normalization gives every
// vertex equal reach, which is what makes the 7-gon hull robust.
func TruncTetPlusDualTet(halfSize float64) []r3.Vec {
	verts := normalizeToSphere(TruncatedTetrahedron(3, 1.0/3.0), 1)
	verts = append(verts, normalizeToSphere(DualTetrahedron(1), 1)...)
	for i, v := range verts {
		verts[i] = r3.Scale(halfSize, v)
	}
	return dedupCoarse(verts)
}

// TruncTetPlusIcosa is the 24-vertex compound behind the 11-gon and 13-gon
// shadows: truncated tetrahedron at halfSize 3 plus an icosahedron scaled
// to the same √11 circumradius. Three-fold and five-fold symmetry are
// incommensurate, which is what lets prime hull counts appear.
func TruncTetPlusIcosa(halfSize float64) []r3.Vec {
	_ = halfSize
	verts := TruncatedTetrahedron(3, 1.0/3.0)
	verts = append(verts, Icosahedron(math.Sqrt(11))...)
	return dedupCoarse(verts)
}

// VariableStella is the stella octangula family: base and dual tetrahedra
// truncated independently by t1 and t2, unit-sphere normalized and scaled
// by halfSize. (1/3, 0) reproduces TruncTetPlusDualTet; (0, 0) is the raw
// 8-vertex stella; (0.5, 0.5) collapses to a single 6-vertex octahedron,
// since the edge-midpoint octahedron is its own negation and both halves
// truncate onto the same points.
func VariableStella(t1, t2, halfSize float64) []r3.Vec {
	verts := normalizeToSphere(TruncatedTetrahedron(3, t1), 1)
	verts = append(verts, normalizeToSphere(TruncatedDualTetrahedron(3, t2), 1)...)
	for i, v := range verts {
		verts[i] = r3.Scale(halfSize, v)
	}
	return dedupCoarse(verts)
}

// normalizeToSphere projects every vertex onto the sphere of the given
// radius. Zero vectors stay at the origin.
func normalizeToSphere(points []r3.Vec, radius float64) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, v := range points {
		if r3.Norm2(v) == 0 {
			continue
		}
		out[i] = r3.Scale(radius, r3.Unit(v))
	}
	return out
}

// dedupCoarse removes vertices that coincide after rounding to
// compoundDedupDecimals places, keeping first occurrences in order.
func dedupCoarse(points []r3.Vec) []r3.Vec {
	scale := math.Pow(10, compoundDedupDecimals)
	type key [3]int64
	seen := make(map[key]bool, len(points))
	out := points[:0]
	for _, v := range points {
		k := key{
			int64(math.Round(v.X * scale)),
			int64(math.Round(v.Y * scale)),
			int64(math.Round(v.Z * scale)),
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
