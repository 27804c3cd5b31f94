package primecut

import "fmt"

// SpreadError reports a spread component outside the valid [0,1] interval.
// Out-of-range spreads are rejected, never clamped: a clamped spread would
// silently verify against a different orientation than the one recorded.
type SpreadError struct {
	Index int // offending component, 0 to 2
	Value float64
}

func (e *SpreadError) Error() string {
	return fmt.Sprintf("spread s%d=%g outside [0,1]", e.Index+1, e.Value)
}
