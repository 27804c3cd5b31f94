package rt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Quadray is a coordinate in the ABCD tetrahedral basis: four equiangular
// axes from the center of a tetrahedron to its vertices. Canonical form has
// all components ≥ 0 with at least one equal to 0.
type Quadray struct {
	A, B, C, D float64
}

// ABCD basis vectors, quadray → cartesian.
var quadrayBasis = [4]r3.Vec{
	{X: -1, Y: -1, Z: 1}, // A
	{X: 1, Y: 1, Z: 1},   // B
	{X: -1, Y: 1, Z: -1}, // C
	{X: 1, Y: -1, Z: -1}, // D
}

// Basis unit quadrays and the origin.
var (
	QuadrayA      = Quadray{A: 1}
	QuadrayB      = Quadray{B: 1}
	QuadrayC      = Quadray{C: 1}
	QuadrayD      = Quadray{D: 1}
	QuadrayOrigin = Quadray{}
)

// Normalize returns the zero-sum form: the average subtracted from each
// component, so A+B+C+D = 0. The cartesian image is unchanged.
func (q Quadray) Normalize() Quadray {
	avg := (q.A + q.B + q.C + q.D) / 4
	return Quadray{A: q.A - avg, B: q.B - avg, C: q.C - avg, D: q.D - avg}
}

// Cartesian converts to xyz: zero-sum normalize, then sum the weighted
// basis vectors.
func (q Quadray) Cartesian() r3.Vec {
	n := q.Normalize()
	v := r3.Scale(n.A, quadrayBasis[0])
	v = r3.Add(v, r3.Scale(n.B, quadrayBasis[1]))
	v = r3.Add(v, r3.Scale(n.C, quadrayBasis[2]))
	v = r3.Add(v, r3.Scale(n.D, quadrayBasis[3]))
	return v
}

// QuadrayFromCartesian inverts Cartesian. The zero-sum components solve the
// linear system given by the basis columns plus the zero-sum constraint,
// which has the closed form below; the result is then shifted so the
// minimum component is 0 (canonical form).
func QuadrayFromCartesian(v r3.Vec) Quadray {
	na := (-v.X - v.Y + v.Z) / 4
	nb := (v.X + v.Y + v.Z) / 4
	nc := (-v.X + v.Y - v.Z) / 4
	nd := (v.X - v.Y - v.Z) / 4
	min := math.Min(math.Min(na, nb), math.Min(nc, nd))
	return Quadray{A: na - min, B: nb - min, C: nc - min, D: nd - min}
}

// Add returns q + p componentwise.
func (q Quadray) Add(p Quadray) Quadray {
	return Quadray{A: q.A + p.A, B: q.B + p.B, C: q.C + p.C, D: q.D + p.D}
}

// Sub returns q − p componentwise.
func (q Quadray) Sub(p Quadray) Quadray {
	return Quadray{A: q.A - p.A, B: q.B - p.B, C: q.C - p.C, D: q.D - p.D}
}

// Scale multiplies every component by k.
func (q Quadray) Scale(k float64) Quadray {
	return Quadray{A: q.A * k, B: q.B * k, C: q.C * k, D: q.D * k}
}

// F32 returns the components as float32, the only place the f64 → f32
// conversion happens for GPU upload.
func (q Quadray) F32() [4]float32 {
	return [4]float32{float32(q.A), float32(q.B), float32(q.C), float32(q.D)}
}

// Quadrance between two quadray points, computed via cartesian.
func (q Quadray) Quadrance(p Quadray) float64 {
	return Quadrance(q.Cartesian(), p.Cartesian())
}

// Spread between two quadray vectors from the origin, via cartesian.
func (q Quadray) Spread(p Quadray) float64 {
	return Spread(q.Cartesian(), p.Cartesian())
}

func (q Quadray) String() string {
	return fmt.Sprintf("[A=%.4f, B=%.4f, C=%.4f, D=%.4f]", q.A, q.B, q.C, q.D)
}
