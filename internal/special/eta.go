package special

import (
	"math"

	"github.com/san-kum/mathkit/internal/numeric"
)

// Eta evaluates the Dirichlet eta function for s > 0. The boundary value
// eta(1) = ln 2 is returned exactly, since the alternating series
// converges too slowly there. For s > 1 the identity
// eta(s) = (1 - 2^(1-s)) * zeta(s) delegates to [Zeta]; for 0 < s < 1
// the alternating series is summed directly.
func Eta(s float64) (float64, error) {
	if s <= 0 {
		return 0, &numeric.DomainError{Func: "eta", Arg: s, Msg: "requires s > 0"}
	}

	if math.Abs(s-1) < 1e-15 {
		return math.Ln2, nil
	}

	if s > 1 {
		z, err := Zeta(s)
		if err != nil {
			return 0, err
		}
		return (1 - math.Pow(2, 1-s)) * z, nil
	}

	const tolerance = 1e-15

	sum := 0.0
	sign := 1.0
	for n := 1; n <= 1_000_000; n++ {
		term := sign / math.Pow(float64(n), s)
		if math.Abs(term) < tolerance {
			break
		}
		sum += term
		sign = -sign
	}

	return sum, nil
}
