package rt

// Cached cubic roots for the non-constructible polygons. The heptagon and
// nonagon star spreads need cubic equations that compass and straightedge
// cannot solve; the base roots are fixed here and the rest follows from
// double-angle identities, so every call site agrees to the last bit.
const (
	// heptagonCos1 is cos(2π/7), the largest real root of 8x³+4x²−4x−1.
	heptagonCos1 = 0.6234898018587336
	heptagonSin1 = 0.7818314824680298
	heptagonCos2 = -0.2225209339563144 // cos(4π/7)
	heptagonSin2 = 0.9749279121818236
	heptagonCos3 = -0.9009688679024191 // cos(6π/7)
	heptagonSin3 = 0.4338837391175582  // sin(6π/7) = sin(π/7)

	// nonagonCos20 is cos(20°), the largest real root of 8x³−6x−1.
	nonagonCos20 = 0.9396926207859084
	nonagonSin20 = 0.3420201433256687
)

// HeptagonSinCos returns sin and cos of 2kπ/7 for k in 1..3.
// Panics outside that range.
func HeptagonSinCos(k int) (sin, cos float64) {
	switch k {
	case 1:
		return heptagonSin1, heptagonCos1
	case 2:
		return heptagonSin2, heptagonCos2
	case 3:
		return heptagonSin3, heptagonCos3
	}
	panic("rt: heptagon angle index must be 1, 2 or 3")
}

// HeptagonStarSpread is sin²(π/7), from sin(6π/7) = sin(π/7).
func HeptagonStarSpread() float64 {
	return heptagonSin3 * heptagonSin3
}

// NonagonSinCos returns sin and cos of 20°·k for k in {1,2,4}, the three
// nonagon angles. k=2 and k=4 expand from the base root by double-angle.
// Panics for other k.
func NonagonSinCos(k int) (sin, cos float64) {
	s, c := nonagonSin20, nonagonCos20
	switch k {
	case 1:
		return s, c
	case 2:
		return 2 * s * c, 2*c*c - 1
	case 4:
		s40, c40 := 2*s*c, 2*c*c-1
		return 2 * s40 * c40, 2*c40*c40 - 1
	}
	panic("rt: nonagon angle index must be 1, 2 or 4")
}

// NonagonStarSpread is sin²(π/9) = sin²(20°).
func NonagonStarSpread() float64 {
	return nonagonSin20 * nonagonSin20
}
