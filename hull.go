package primecut

import (
	"math"
	"sort"

	"github.com/artexplorer/primecut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// hullDedupTol collapses projected points that agree to within this
// per-axis absolute difference before the hull scan. Per-axis, not
// Euclidean: |Δx|<tol ∧ |Δy|<tol.
const hullDedupTol = 1e-8

// Hull computes the convex hull of points with a Graham scan, returned in
// counter-clockwise order. Fewer than 3 unique points come back unchanged
// as a degenerate hull. Collinear boundary points are removed: the scan
// pops on cross ≤ 0, so only strictly convex corners survive, which is
// what hull-count classification needs.
func Hull(points []r2.Vec) []r2.Vec {
	pts := dedup(points)
	if len(pts) < 3 {
		return pts
	}

	// Pivot: lowest y, ties broken by lowest x.
	piv := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[piv].Y || (pts[i].Y == pts[piv].Y && pts[i].X < pts[piv].X) {
			piv = i
		}
	}
	pts[0], pts[piv] = pts[piv], pts[0]
	pivot := pts[0]

	// Sort by polar angle about the pivot, equal angles near-to-far.
	// Points collinear with the pivot must arrive in distance order: the
	// scan then pops the near interior points and keeps the far corner.
	cands := make([]hullCandidate, len(pts)-1)
	for i, p := range pts[1:] {
		d := r2.Sub(p, pivot)
		cands[i] = hullCandidate{p: p, theta: math.Atan2(d.Y, d.X), quadrance: r2.Norm2(d)}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].theta != cands[j].theta {
			return cands[i].theta < cands[j].theta
		}
		return cands[i].quadrance < cands[j].quadrance
	})

	stack := make([]r2.Vec, 0, len(pts))
	stack = append(stack, pivot, cands[0].p)
	for _, c := range cands[1:] {
		for len(stack) >= 2 {
			o := stack[len(stack)-2]
			a := stack[len(stack)-1]
			if d2.Cross(r2.Sub(a, o), r2.Sub(c.p, o)) <= 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}
		stack = append(stack, c.p)
	}
	return stack
}

type hullCandidate struct {
	p         r2.Vec
	theta     float64
	quadrance float64
}

// dedup returns the unique points in input order.
func dedup(points []r2.Vec) []r2.Vec {
	uniq := make([]r2.Vec, 0, len(points))
	for _, p := range points {
		seen := false
		for _, q := range uniq {
			if math.Abs(p.X-q.X) < hullDedupTol && math.Abs(p.Y-q.Y) < hullDedupTol {
				seen = true
				break
			}
		}
		if !seen {
			uniq = append(uniq, p)
		}
	}
	return uniq
}
