package special

import (
	"math"

	"github.com/san-kum/mathkit/internal/numeric"
)

// zetaMaxTerms bounds worst-case latency for s close to 1, where the
// series converges slowly. Truncation there is an accepted trade-off.
const zetaMaxTerms = 1_000_000

// Zeta evaluates the Riemann zeta function for s > 1 by direct series
// summation. The well-known checkpoints s = 2 and s = 4 return their
// closed forms pi^2/6 and pi^4/90 exactly.
func Zeta(s float64) (float64, error) {
	if s <= 1 {
		return 0, &numeric.DomainError{Func: "zeta", Arg: s, Msg: "series requires s > 1"}
	}

	if math.Abs(s-2) < 1e-15 {
		return numeric.Pi * numeric.Pi / 6, nil
	}
	if math.Abs(s-4) < 1e-15 {
		return math.Pow(numeric.Pi, 4) / 90, nil
	}

	const tolerance = 1e-15

	sum := 0.0
	for n := 1.0; n <= zetaMaxTerms; n++ {
		term := 1 / math.Pow(n, s)
		if term < tolerance {
			break
		}
		sum += term
	}

	return sum, nil
}
