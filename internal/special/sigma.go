package special

import (
	"math"

	"github.com/san-kum/mathkit/internal/numeric"
)

// Sigma computes the sum of all positive divisors of n by trial division
// up to the square root. Each divisor i found below the root contributes
// its pair n/i as well; a square root divisor is counted once.
func Sigma(n uint64) (uint64, error) {
	if n == 0 {
		return 0, &numeric.DomainError{Func: "sigma", Arg: 0, Msg: "undefined for n = 0"}
	}
	if n == 1 {
		return 1, nil
	}

	var sum uint64
	limit := uint64(math.Sqrt(float64(n)))

	for i := uint64(1); i <= limit; i++ {
		if n%i == 0 {
			sum += i
			if i != n/i {
				sum += n / i
			}
		}
	}

	return sum, nil
}

// IsPerfect reports whether n equals the sum of its proper divisors,
// that is, sigma(n) == 2n.
func IsPerfect(n uint64) bool {
	if n <= 1 {
		return false
	}
	sum, err := Sigma(n)
	if err != nil {
		return false
	}
	return sum == 2*n
}
