package primecut

import "math"

// Spreads holds the three rotation parameters. A spread is rational
// trigonometry's stand-in for the squared sine of an angle: each component
// is sin²θ of one elementary rotation with θ in [0, π/2]. The encoding
// sinθ=√s, cosθ=√(1−s) takes the positive branch of both roots, so only
// first-quadrant angles are reachable. That restricts the reachable subset
// of SO(3) and is an inherent property of the parameterization.
type Spreads [3]float64

// Validate returns a *SpreadError for the first component outside [0,1].
func (s Spreads) Validate() error {
	for i, v := range s {
		// Negated comparison also rejects NaN.
		if !(v >= 0 && v <= 1) {
			return &SpreadError{Index: i, Value: v}
		}
	}
	return nil
}

// sinCosFromSpread converts a spread to the sine and cosine of its angle,
// positive branches only. Callers validate s beforehand.
func sinCosFromSpread(s float64) (sin, cos float64) {
	return math.Sqrt(s), math.Sqrt(1 - s)
}
