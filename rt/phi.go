package rt

import (
	"fmt"
	"math"
)

// Golden ratio constants. The derived powers use the algebraic identities
// φ² = φ+1, 1/φ = φ−1, φ³ = 2φ+1, φ⁴ = 3φ+2 rather than repeated
// multiplication, so they stay bit-identical across call sites.

var sqrt5 = math.Sqrt(5)

// Sqrt5 returns √5, computed once.
func Sqrt5() float64 { return sqrt5 }

// Phi is the golden ratio (1+√5)/2.
func Phi() float64 { return 0.5 * (1 + sqrt5) }

// PhiSquared is φ² = φ+1.
func PhiSquared() float64 { return Phi() + 1 }

// PhiInverse is 1/φ = φ−1.
func PhiInverse() float64 { return Phi() - 1 }

// PhiCubed is φ³ = 2φ+1.
func PhiCubed() float64 { return 2*Phi() + 1 }

// PhiFourth is φ⁴ = 3φ+2.
func PhiFourth() float64 { return 3*Phi() + 2 }

// PhiExpr is a symbolic golden ratio expression (A + B√5)/C. Arithmetic on
// PhiExpr values stays exact for rational coefficients; call Float only at
// the numeric boundary.
type PhiExpr struct {
	A, B, C float64
}

// Common symbolic constants.
var (
	ExprPhi    = PhiExpr{A: 1, B: 1, C: 2}  // φ = (1+√5)/2
	ExprPhiSq  = PhiExpr{A: 3, B: 1, C: 2}  // φ² = (3+√5)/2
	ExprInvPhi = PhiExpr{A: -1, B: 1, C: 2} // 1/φ = (−1+√5)/2
	ExprOne    = PhiExpr{A: 1, B: 0, C: 1}
	ExprZero   = PhiExpr{A: 0, B: 0, C: 1}
)

// Float expands the expression to a float64.
func (p PhiExpr) Float() float64 { return (p.A + p.B*sqrt5) / p.C }

// Mul multiplies two expressions, using (b1√5)(b2√5) = 5·b1·b2.
func (p PhiExpr) Mul(q PhiExpr) PhiExpr {
	return PhiExpr{
		A: p.A*q.A + 5*p.B*q.B,
		B: p.A*q.B + p.B*q.A,
		C: p.C * q.C,
	}
}

// Add combines two expressions over a common denominator.
func (p PhiExpr) Add(q PhiExpr) PhiExpr {
	return PhiExpr{
		A: p.A*q.C + q.A*p.C,
		B: p.B*q.C + q.B*p.C,
		C: p.C * q.C,
	}
}

// Sub subtracts q from p.
func (p PhiExpr) Sub(q PhiExpr) PhiExpr {
	return PhiExpr{
		A: p.A*q.C - q.A*p.C,
		B: p.B*q.C - q.B*p.C,
		C: p.C * q.C,
	}
}

// Scale multiplies the expression by a rational factor.
func (p PhiExpr) Scale(k float64) PhiExpr {
	return PhiExpr{A: p.A * k, B: p.B * k, C: p.C}
}

func (p PhiExpr) String() string {
	if p.B == 0 {
		return fmt.Sprintf("%g/%g", p.A, p.C)
	}
	sign := ""
	if p.B >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("(%g %s%g√5)/%g", p.A, sign, p.B, p.C)
}
