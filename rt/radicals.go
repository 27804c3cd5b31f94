package rt

import "math"

// Radical constants computed once so every call site sees the same IEEE 754
// value, same pattern as the golden ratio constants.

var (
	sqrt2 = math.Sqrt(2)
	sqrt3 = math.Sqrt(3)
	sqrt6 = math.Sqrt(6)
)

// Sqrt2 returns √2.
func Sqrt2() float64 { return sqrt2 }

// Sqrt3 returns √3.
func Sqrt3() float64 { return sqrt3 }

// Sqrt6 returns √6.
func Sqrt6() float64 { return sqrt6 }

// QuadrayGridInterval is √6/4, the perpendicular distance between parallel
// tetrahedral planes of the quadray grid.
func QuadrayGridInterval() float64 { return sqrt6 / 4 }
