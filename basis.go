package primecut

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// RotationBasis is the orthonormal frame derived from three spreads.
// Right and Up span the projection plane, Normal points out of it.
// Pairwise dot products stay within 1e-6 of zero for all valid spreads.
type RotationBasis struct {
	Right, Up, Normal r3.Vec
}

// Compose converts spreads to a rotation basis. The elementary rotations
// are about Z (s1), Y (s2) and X (s3), composed as R = Rz·Ry·Rx with X
// applied first. Stored presets record their spreads under this exact
// composition order, so it must not change. The basis vectors are the
// columns of R, re-normalized.
func Compose(s Spreads) (RotationBasis, error) {
	if err := s.Validate(); err != nil {
		return RotationBasis{}, err
	}
	sin1, cos1 := sinCosFromSpread(s[0])
	sin2, cos2 := sinCosFromSpread(s[1])
	sin3, cos3 := sinCosFromSpread(s[2])
	rz := r3.NewMat([]float64{
		cos1, -sin1, 0,
		sin1, cos1, 0,
		0, 0, 1,
	})
	ry := r3.NewMat([]float64{
		cos2, 0, sin2,
		0, 1, 0,
		-sin2, 0, cos2,
	})
	rx := r3.NewMat([]float64{
		1, 0, 0,
		0, cos3, -sin3,
		0, sin3, cos3,
	})
	zy := r3.NewMat(nil)
	zy.Mul(rz, ry)
	rot := r3.NewMat(nil)
	rot.Mul(zy, rx)
	return RotationBasis{
		Right:  r3.Unit(r3.Vec{X: rot.At(0, 0), Y: rot.At(1, 0), Z: rot.At(2, 0)}),
		Up:     r3.Unit(r3.Vec{X: rot.At(0, 1), Y: rot.At(1, 1), Z: rot.At(2, 1)}),
		Normal: r3.Unit(r3.Vec{X: rot.At(0, 2), Y: rot.At(1, 2), Z: rot.At(2, 2)}),
	}, nil
}
