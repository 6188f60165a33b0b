package special

import (
	"math"

	"github.com/san-kum/mathkit/internal/numeric"
)

// Lanczos approximation coefficients, g = 7. Accurate to roughly 15
// digits for arguments in [1, 2).
const lanczosG = 7.0

var lanczosCoeffs = [9]float64{
	0.9999999999998099,
	676.5203681218851,
	-1259.1392167224028,
	771.3234287776530,
	-176.6150291621406,
	12.507343278686905,
	-0.13857109526572012,
	9.984369578019572e-6,
	1.5056327351493116e-7,
}

// Gamma evaluates the gamma function for x > 0. Arguments below 1 are
// lifted with the recurrence gamma(x) = gamma(x+1)/x; arguments of 2 and
// above peel integer factors via gamma(x) = (x-1)*gamma(x-1) until the
// remainder lands in [1, 2), where the Lanczos approximation applies.
func Gamma(x float64) (float64, error) {
	if x <= 0 {
		return 0, &numeric.DomainError{Func: "gamma", Arg: x, Msg: "undefined for non-positive values"}
	}

	if x < 1 {
		return lanczos(x+1) / x, nil
	}

	mult := 1.0
	for x >= 2 {
		x--
		mult *= x
	}

	return mult * lanczos(x), nil
}

// lanczos evaluates gamma(z) for z in [1, 2).
func lanczos(z float64) float64 {
	z -= 1

	a := lanczosCoeffs[0]
	for i := 1; i < len(lanczosCoeffs); i++ {
		a += lanczosCoeffs[i] / (z + float64(i))
	}

	t := z + lanczosG + 0.5
	return math.Sqrt(2*numeric.Pi) * math.Pow(t, z+0.5) * math.Exp(-t) * a
}
