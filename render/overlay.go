package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/artexplorer/primecut"
	"github.com/artexplorer/primecut/rt"
)

// Overlay holds flat float32 line-segment buffers ready for upload to a
// GPU line renderer. Each segment is 6 floats: x0,y0,z0,x1,y1,z1.
type Overlay struct {
	// HullOutline traces the hull polygon on the projection plane.
	HullOutline []float32
	// Rays connect each source point to its projection on the plane.
	Rays []float32
	// IdealNgon is the regular polygon with the hull's vertex count and
	// circumradius, centered on the hull centroid, for visual comparison
	// against the actual shadow.
	IdealNgon []float32
}

// BuildOverlay assembles the viewer buffers for a projection. The ideal
// polygon uses the reflection-based construction so its vertices carry no
// accumulated trigonometric error.
func BuildOverlay(proj primecut.Projection) (Overlay, error) {
	if proj.Degenerate() || len(proj.Points) == 0 {
		return Overlay{}, errors.New("overlay: projection hull is degenerate")
	}
	center := planeCenter(proj)
	n := len(proj.Hull)

	var o Overlay
	o.HullOutline = make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		a := onPlanePoint(center, proj.Basis, proj.Hull[i])
		b := onPlanePoint(center, proj.Basis, proj.Hull[(i+1)%n])
		o.HullOutline = appendSegment(o.HullOutline, a, b)
	}

	o.Rays = make([]float32, 0, len(proj.Points)*6)
	for _, p := range proj.Points {
		o.Rays = appendSegment(o.Rays, p.World, p.OnPlane)
	}

	centroid, radius := primecut.CentroidMaxRadius(proj.Hull)
	ngon := rt.NgonVertices(n, radius)
	o.IdealNgon = make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		a := onPlanePoint(center, proj.Basis, r2.Add(centroid, ngon.Vertices[i]))
		b := onPlanePoint(center, proj.Basis, r2.Add(centroid, ngon.Vertices[(i+1)%n]))
		o.IdealNgon = appendSegment(o.IdealNgon, a, b)
	}

	for _, buf := range [][]float32{o.HullOutline, o.Rays, o.IdealNgon} {
		if err := screenBuffer(buf); err != nil {
			return Overlay{}, err
		}
	}
	return o, nil
}

func appendSegment(buf []float32, a, b r3.Vec) []float32 {
	return append(buf,
		float32(a.X), float32(a.Y), float32(a.Z),
		float32(b.X), float32(b.Y), float32(b.Z),
	)
}

func screenBuffer(buf []float32) error {
	for i, v := range buf {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("overlay: inf/NaN at buffer index %d", i)
		}
	}
	return nil
}
