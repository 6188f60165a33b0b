package special

import (
	"math"

	"github.com/san-kum/mathkit/internal/numeric"
)

// Exp evaluates e^x by accumulating the Taylor series term by term until
// the term magnitude drops to machine epsilon. There is no iteration cap;
// convergence is slow for large negative x.
func Exp(x float64) float64 {
	result := 1.0
	term := 1.0
	n := 1.0

	for math.Abs(term) > numeric.Epsilon {
		term *= x / n
		result += term
		n++
	}

	return result
}
