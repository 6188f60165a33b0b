package special

import "math"

// Abramowitz and Stegun 7.1.26 coefficients. Maximum absolute error of
// the approximation is 1.5e-7.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// Erf evaluates the error function. Negative arguments use the odd
// symmetry erf(-x) = -erf(x); beyond x = 5 the remaining tail is
// negligible and the result saturates to 1.
func Erf(x float64) float64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -Erf(-x)
	}
	if x > 5 {
		return 1
	}

	t := 1 / (1 + erfP*x)
	poly := t * (erfA1 + t*(erfA2+t*(erfA3+t*(erfA4+t*erfA5))))

	return 1 - poly*math.Exp(-x*x)
}
