package render

import (
	"errors"

	"github.com/artexplorer/primecut"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateShadow is returned when the projection's hull has fewer
// than 3 vertices and no solid can be built from it.
var ErrDegenerateShadow = errors.New("degenerate shadow: hull has fewer than 3 vertices")

// ShadowMesh extrudes the hull polygon into a thin solid centered on the
// projection plane: a printable artifact of the shadow. The hull is
// fan-triangulated for the two caps and each edge gets two side triangles,
// 4n-4 triangles total for an n-vertex hull. Panics if thickness is not
// positive; that is a programmer error.
func ShadowMesh(proj primecut.Projection, thickness float64) ([]Triangle3, error) {
	if thickness <= 0 {
		panic("render: shadow thickness must be positive")
	}
	if proj.Degenerate() || len(proj.Points) == 0 {
		return nil, ErrDegenerateShadow
	}

	center := planeCenter(proj)
	n := len(proj.Hull)
	half := thickness / 2
	top := make([]r3.Vec, n)
	bot := make([]r3.Vec, n)
	for i, h := range proj.Hull {
		onPlane := onPlanePoint(center, proj.Basis, h)
		top[i] = r3.Add(onPlane, r3.Scale(half, proj.Basis.Normal))
		bot[i] = r3.Sub(onPlane, r3.Scale(half, proj.Basis.Normal))
	}

	tris := make([]Triangle3, 0, 4*n-4)
	// Caps. The hull is CCW in the {right,up} frame, so the top fan keeps
	// that winding and the bottom fan reverses it to face outward.
	for i := 1; i < n-1; i++ {
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{top[0], top[i], top[i+1]}},
			Triangle3{V: [3]r3.Vec{bot[0], bot[i+1], bot[i]}},
		)
	}
	// Sides.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{top[i], bot[i], bot[j]}},
			Triangle3{V: [3]r3.Vec{top[i], bot[j], top[j]}},
		)
	}
	return tris, nil
}

// planeCenter recovers the projection plane's origin from any projection
// record: OnPlane = center + x·right + y·up.
func planeCenter(proj primecut.Projection) r3.Vec {
	p := proj.Points[0]
	c := r3.Sub(p.OnPlane, r3.Scale(p.Plane.X, proj.Basis.Right))
	return r3.Sub(c, r3.Scale(p.Plane.Y, proj.Basis.Up))
}

// onPlanePoint lifts plane-local coordinates back into 3d.
func onPlanePoint(center r3.Vec, basis primecut.RotationBasis, p r2.Vec) r3.Vec {
	v := r3.Add(center, r3.Scale(p.X, basis.Right))
	return r3.Add(v, r3.Scale(p.Y, basis.Up))
}
